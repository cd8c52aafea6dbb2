package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	EnemyPrefab  = "enemy.yaml"
	PlayerPrefab = "player.yaml"

	DefaultFollowSpeed = 250.0
	DefaultFollowRange = 100.0
	DefaultMoveSpeed   = 120.0
	DefaultBodyRadius  = 5.0
)

// EntityBuildSpec is a named bag of component specs keyed by component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a loosely typed component entry into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Component decodes the named component of s into T. Missing components
// decode to the zero value.
func Component[T any](s EntityBuildSpec, name string) (T, error) {
	out, err := DecodeComponentSpec[T](s.Components[name])
	if err != nil {
		return out, fmt.Errorf("prefabs: %s.%s: %w", s.Name, name, err)
	}
	return out, nil
}

type PursuerComponentSpec struct {
	FollowSpeed float64 `yaml:"follow_speed"`
	ReturnSpeed float64 `yaml:"return_speed"`
	FollowRange float64 `yaml:"follow_range"`
	Trigger     any     `yaml:"trigger"`
}

// WithDefaults fills unset tuning. Return speed follows the follow speed.
func (p PursuerComponentSpec) WithDefaults() PursuerComponentSpec {
	if p.FollowSpeed <= 0 {
		p.FollowSpeed = DefaultFollowSpeed
	}
	if p.ReturnSpeed <= 0 {
		p.ReturnSpeed = p.FollowSpeed
	}
	if p.FollowRange <= 0 {
		p.FollowRange = DefaultFollowRange
	}
	return p
}

type MoverComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

func (m MoverComponentSpec) WithDefaults() MoverComponentSpec {
	if m.Speed <= 0 {
		m.Speed = DefaultMoveSpeed
	}
	return m
}

type BodyComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

func (b BodyComponentSpec) WithDefaults() BodyComponentSpec {
	if b.Radius <= 0 {
		b.Radius = DefaultBodyRadius
	}
	return b
}
