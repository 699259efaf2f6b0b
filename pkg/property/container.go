package property

import (
	"fmt"
	"strings"

	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
)

// Declaration is an immutable attribute descriptor: a name unique within its
// container, the spec governing accepted value shapes, a validated default,
// and a help string carrying at most one %s category placeholder. Origin
// records the bundle category that contributed the declaration; it is empty
// for directly declared attributes.
type Declaration struct {
	Name    string
	Spec    Spec
	Default Value
	Help    string
	Origin  string
}

// NewDeclaration builds a declaration, validating the default through the
// spec. A misconfigured default fails here, at definition time, never at
// first use.
func NewDeclaration(name string, spec Spec, def any, help string) (Declaration, error) {
	if name == "" {
		return Declaration{}, vperrors.NewDeclarationError(name, "attribute name is empty", nil)
	}
	if spec == nil {
		return Declaration{}, vperrors.NewDeclarationError(name, "spec is nil", nil)
	}
	if strings.Count(help, "%s") > 1 {
		return Declaration{}, vperrors.NewDeclarationError(name, "help text has more than one %s placeholder", nil)
	}
	dv, err := spec.Validate(def)
	if err != nil {
		return Declaration{}, vperrors.NewDeclarationError(name, fmt.Sprintf("invalid default for %s: %v", spec.Kind(), err), err)
	}
	return Declaration{Name: name, Spec: spec, Default: dv, Help: help}, nil
}

// MustDeclaration is NewDeclaration for fixed tables assembled at package
// init time; it panics on error.
func MustDeclaration(name string, spec Spec, def any, help string) Declaration {
	d, err := NewDeclaration(name, spec, def, help)
	if err != nil {
		panic(err)
	}
	return d
}

// Registrar is the contract the inclusion mechanism needs from a target
// container: checked registration and name lookup. Include depends on
// nothing else, so any attribute store satisfying this interface can be a
// target.
type Registrar interface {
	// Declare registers a declaration. Registering an existing name
	// replaces the previous declaration.
	Declare(d Declaration) error
	// Lookup returns the declaration registered under name.
	Lookup(name string) (Declaration, bool)
}

// Container owns an ordered table of attribute declarations and per-instance
// values. Declarations are registered during type assembly, a one-time
// single-threaded phase; the table is treated as immutable afterward, so
// concurrent readers need no locking.
type Container struct {
	order  []string
	decls  map[string]Declaration
	values map[string]Value
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		decls:  make(map[string]Declaration),
		values: make(map[string]Value),
	}
}

// Declare registers a declaration. Redefining an existing name replaces the
// previous declaration in place, keeping its position in the table order.
func (c *Container) Declare(d Declaration) error {
	if d.Name == "" {
		return vperrors.NewDeclarationError("", "attribute name is empty", nil)
	}
	if d.Spec == nil {
		return vperrors.NewDeclarationError(d.Name, "spec is nil", nil)
	}
	if _, exists := c.decls[d.Name]; !exists {
		c.order = append(c.order, d.Name)
	}
	d.Default = d.Default.clone()
	c.decls[d.Name] = d
	return nil
}

// Lookup returns the declaration registered under name.
func (c *Container) Lookup(name string) (Declaration, bool) {
	d, ok := c.decls[name]
	return d, ok
}

// Declarations returns the declaration table in registration order.
func (c *Container) Declarations() []Declaration {
	out := make([]Declaration, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.decls[name])
	}
	return out
}

// Names returns the declared attribute names in registration order.
func (c *Container) Names() []string {
	return append([]string(nil), c.order...)
}

// Set assigns a value to a declared attribute, routing it through the
// declaration's spec. Failures identify the attribute, the spec kind, and
// the rejected value.
func (c *Container) Set(name string, input any) error {
	d, ok := c.decls[name]
	if !ok {
		return vperrors.NewValidationError(name, "", input, fmt.Errorf("attribute not declared"))
	}
	v, err := d.Spec.Validate(input)
	if err != nil {
		return vperrors.NewValidationError(name, d.Spec.Kind(), input, err)
	}
	c.values[name] = v
	return nil
}

// Get returns the attribute's current value: the explicitly assigned value
// if one was set, otherwise the declared default. The second result is false
// for undeclared names.
func (c *Container) Get(name string) (Value, bool) {
	if v, ok := c.values[name]; ok {
		return v, true
	}
	d, ok := c.decls[name]
	if !ok {
		return Value{}, false
	}
	return d.Default, true
}

// IsSet reports whether the attribute was explicitly assigned, as opposed to
// resting on its declared default.
func (c *Container) IsSet(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Unset clears an explicit assignment, returning the attribute to its
// declared default.
func (c *Container) Unset(name string) {
	delete(c.values, name)
}
