// Package theme loads YAML stylesheet documents and applies their attribute
// values onto containers composed from the built-in mixin bundles.
package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

// Theme represents a full stylesheet document.
type Theme struct {
	Version string  `yaml:"version" validate:"required,semver"`
	Name    string  `yaml:"name" validate:"required,min=1,max=100"`
	Styles  []Style `yaml:"styles" validate:"required,min=1,dive"`
}

// Style configures one target model: which bundles it composes and the
// attribute values assigned on top of the bundle defaults.
type Style struct {
	Target  string               `yaml:"target" validate:"required,style_id"`
	Include []string             `yaml:"include" validate:"required,min=1,dive,oneof=fill line text"`
	Attrs   map[string]AttrValue `yaml:"attrs,omitempty"`
}

// AttrValue is a polymorphic attribute value node: a scalar literal, a
// sequence (dash runs or color tuples), or a single-key mapping selecting a
// field or expr reference.
type AttrValue struct {
	raw any
}

// Raw returns the decoded value in the shape the property specs accept.
func (a AttrValue) Raw() any {
	return a.raw
}

// UnmarshalYAML decodes the three accepted node shapes.
func (a *AttrValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		a.raw = v
		return nil
	case yaml.SequenceNode:
		var runs []int
		if err := node.Decode(&runs); err == nil {
			a.raw = runs
			return nil
		}
		var mixed []any
		if err := node.Decode(&mixed); err != nil {
			return err
		}
		a.raw = mixed
		return nil
	case yaml.MappingNode:
		var ref struct {
			Field string `yaml:"field"`
			Expr  string `yaml:"expr"`
		}
		if err := node.Decode(&ref); err != nil {
			return err
		}
		switch {
		case ref.Field != "" && ref.Expr != "":
			return fmt.Errorf("line %d: attribute value sets both field and expr", node.Line)
		case ref.Field != "":
			a.raw = property.Field(ref.Field)
		case ref.Expr != "":
			a.raw = property.Expr(ref.Expr)
		default:
			return fmt.Errorf("line %d: attribute value mapping needs a field or expr key", node.Line)
		}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported attribute value node", node.Line)
	}
}
