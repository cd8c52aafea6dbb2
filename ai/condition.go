package ai

import "github.com/milk9111/npcnav/nav"

// Context holds the live positions a condition is evaluated against.
type Context struct {
	Agent       nav.Vec
	Target      nav.Vec
	TargetFound bool
	// Range is the agent's pursuit range, used by conditions that do not
	// carry their own.
	Range float64
}

// Distance returns the Euclidean distance between agent and target.
func (c Context) Distance() float64 {
	return c.Agent.Dist(c.Target)
}

// Condition is a boolean predicate over live positions.
type Condition interface {
	Eval(ctx Context) bool
}

// ConditionFunc adapts a plain function to Condition.
type ConditionFunc func(ctx Context) bool

func (f ConditionFunc) Eval(ctx Context) bool { return f(ctx) }

// Near is true when the target is strictly closer than Range. A zero Range
// uses the context's range.
type Near struct {
	Range float64
}

func (n Near) Eval(ctx Context) bool {
	if !ctx.TargetFound {
		return false
	}
	r := n.Range
	if r <= 0 {
		r = ctx.Range
	}
	return ctx.Distance() < r
}

type not struct{ c Condition }

func (n not) Eval(ctx Context) bool { return !n.c.Eval(ctx) }

// Not negates c.
func Not(c Condition) Condition {
	if inner, ok := c.(not); ok {
		return inner.c
	}
	return not{c: c}
}

type all []Condition

func (a all) Eval(ctx Context) bool {
	for _, c := range a {
		if !c.Eval(ctx) {
			return false
		}
	}
	return true
}

// And is true when every condition is. And() is true.
func And(conds ...Condition) Condition {
	return all(conds)
}

type anyOf []Condition

func (a anyOf) Eval(ctx Context) bool {
	for _, c := range a {
		if c.Eval(ctx) {
			return true
		}
	}
	return false
}

// Or is true when any condition is. Or() is false.
func Or(conds ...Condition) Condition {
	return anyOf(conds)
}
