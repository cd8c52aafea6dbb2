package ai

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const scriptResultVar = "__result"

// scriptFloatVars are the numeric variables a script condition sees. The
// pursuit range is exposed as follow_range because range is a tengo builtin.
var scriptFloatVars = []string{"distance", "follow_range", "agent_x", "agent_y", "target_x", "target_y"}

// ScriptCondition evaluates a tengo expression. The expression sees
// distance, follow_range, agent_x, agent_y, target_x, target_y and
// target_found, and must yield a bool.
type ScriptCondition struct {
	source   string
	compiled *tengo.Compiled
	reported atomic.Bool
}

// CompileScriptCondition compiles expr once and dry-runs it against a
// sample context, so unknown names and non-bool results fail here rather
// than every tick. Eval runs a clone per call.
func CompileScriptCondition(expr string) (*ScriptCondition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("ai: empty script condition")
	}

	script := tengo.NewScript([]byte(scriptResultVar + " := (" + expr + ")"))
	for _, name := range scriptFloatVars {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("ai: script add %s: %w", name, err)
		}
	}
	if err := script.Add("target_found", false); err != nil {
		return nil, fmt.Errorf("ai: script add target_found: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %q: %w", expr, err)
	}
	s := &ScriptCondition{source: expr, compiled: compiled}
	if _, err := s.Evaluate(Context{TargetFound: true, Range: 1}); err != nil {
		return nil, fmt.Errorf("ai: script %q: %w", expr, err)
	}
	return s, nil
}

func (s *ScriptCondition) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Evaluate runs the script against ctx. A missing target is false without
// running the script.
func (s *ScriptCondition) Evaluate(ctx Context) (bool, error) {
	if s == nil || s.compiled == nil {
		return false, fmt.Errorf("ai: script condition not compiled")
	}
	if !ctx.TargetFound {
		return false, nil
	}
	c := s.compiled.Clone()
	vars := map[string]any{
		"distance":     ctx.Distance(),
		"follow_range": ctx.Range,
		"agent_x":      ctx.Agent.X,
		"agent_y":      ctx.Agent.Y,
		"target_x":     ctx.Target.X,
		"target_y":     ctx.Target.Y,
		"target_found": ctx.TargetFound,
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return false, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return false, fmt.Errorf("run: %w", err)
	}
	result, ok := c.Get(scriptResultVar).Value().(bool)
	if !ok {
		return false, fmt.Errorf("result is %s, want bool", c.Get(scriptResultVar).ValueType())
	}
	return result, nil
}

// Eval is Evaluate with failures read as false. The first failure of each
// condition is logged.
func (s *ScriptCondition) Eval(ctx Context) bool {
	ok, err := s.Evaluate(ctx)
	if err != nil {
		if s != nil && s.reported.CompareAndSwap(false, true) {
			slog.Warn("ai: script condition failed", "script", s.Source(), "error", err)
		}
		return false
	}
	return ok
}
