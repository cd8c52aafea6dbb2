package ai

import (
	"errors"
	"fmt"
)

var ErrUnknownCondition = errors.New("ai: unknown condition")

var conditionRegistry map[string]func(arg any) (Condition, error)

func init() {
	conditionRegistry = map[string]func(arg any) (Condition, error){
		"near": func(arg any) (Condition, error) {
			r, err := asRange(arg)
			if err != nil {
				return nil, err
			}
			return Near{Range: r}, nil
		},
		"not": func(arg any) (Condition, error) {
			inner, err := CompileCondition(arg)
			if err != nil {
				return nil, err
			}
			return Not(inner), nil
		},
		"all": func(arg any) (Condition, error) {
			conds, err := compileList(arg)
			if err != nil {
				return nil, err
			}
			return And(conds...), nil
		},
		"any": func(arg any) (Condition, error) {
			conds, err := compileList(arg)
			if err != nil {
				return nil, err
			}
			return Or(conds...), nil
		},
		"script": func(arg any) (Condition, error) {
			src, ok := arg.(string)
			if !ok {
				return nil, fmt.Errorf("ai: script condition wants a string, got %T", arg)
			}
			return CompileScriptCondition(src)
		},
	}
}

// CompileCondition builds a condition from a decoded YAML tree such as
// {near: 100} or {all: [{near: 0}, {script: "target_y > agent_y"}]}. A nil
// tree is Near with the agent's own range.
func CompileCondition(raw any) (Condition, error) {
	switch v := raw.(type) {
	case nil:
		return Near{}, nil
	case string:
		return compileEntry(v, nil)
	case map[string]any:
		if len(v) != 1 {
			return nil, fmt.Errorf("ai: condition wants exactly one key, got %d", len(v))
		}
		for name, arg := range v {
			return compileEntry(name, arg)
		}
	}
	return nil, fmt.Errorf("ai: invalid condition %T", raw)
}

func compileEntry(name string, arg any) (Condition, error) {
	maker, ok := conditionRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
	}
	return maker(arg)
}

func compileList(arg any) ([]Condition, error) {
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("ai: condition list wants a sequence, got %T", arg)
	}
	out := make([]Condition, 0, len(list))
	for _, item := range list {
		c, err := CompileCondition(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// asRange reads a near argument. No argument means the agent's own range.
func asRange(v any) (float64, error) {
	var r float64
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		r = float64(t)
	case int64:
		r = float64(t)
	case float64:
		r = t
	case float32:
		r = float64(t)
	default:
		return 0, fmt.Errorf("ai: near wants a number, got %T", v)
	}
	if r < 0 {
		return 0, fmt.Errorf("ai: near range %v is negative", r)
	}
	return r, nil
}
