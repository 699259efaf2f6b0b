package property

import (
	"fmt"
	"strings"

	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
)

// Bundle is a reusable, named template of attribute declarations with no
// storage of its own. Declarations carry base names ("color", "width"); the
// inclusion mechanism derives the final names on the target.
type Bundle struct {
	category string
	decls    []Declaration
}

// NewBundle assembles a bundle under a category label. Base names must be
// unique within the bundle.
func NewBundle(category string, decls ...Declaration) (Bundle, error) {
	if category == "" {
		return Bundle{}, vperrors.NewDeclarationError("", "bundle category is empty", nil)
	}
	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		if _, dup := seen[d.Name]; dup {
			return Bundle{}, vperrors.NewDeclarationError(d.Name, fmt.Sprintf("duplicate base name in bundle %q", category), nil)
		}
		seen[d.Name] = struct{}{}
	}
	return Bundle{category: category, decls: append([]Declaration(nil), decls...)}, nil
}

// MustBundle is NewBundle for the fixed bundles assembled at package init
// time; it panics on error.
func MustBundle(category string, decls ...Declaration) Bundle {
	b, err := NewBundle(category, decls...)
	if err != nil {
		panic(err)
	}
	return b
}

// Category returns the bundle's category label, e.g. "fill".
func (b Bundle) Category() string {
	return b.category
}

// Declarations returns copies of the bundle's declarations in order.
func (b Bundle) Declarations() []Declaration {
	out := make([]Declaration, len(b.decls))
	for i, d := range b.decls {
		d.Default = d.Default.clone()
		out[i] = d
	}
	return out
}

type includeConfig struct {
	usePrefix bool
	overrides map[string]string
	category  string
}

// IncludeOption configures one Include call.
type IncludeOption func(*includeConfig)

// WithoutPrefix registers the bundle's attributes under their bare base
// names instead of the default "<category>_<base>" naming.
func WithoutPrefix() IncludeOption {
	return func(cfg *includeConfig) {
		cfg.usePrefix = false
	}
}

// WithNameOverrides maps base attribute names to explicit target names. Only
// meaningful together with WithoutPrefix; supplying overrides with prefixed
// naming is a definition-time error.
func WithNameOverrides(overrides map[string]string) IncludeOption {
	return func(cfg *includeConfig) {
		cfg.overrides = overrides
	}
}

// WithHelpCategory substitutes the given category label into each help
// text's %s placeholder, exactly once. Without this option the placeholder
// is left for downstream documentation tooling.
func WithHelpCategory(category string) IncludeOption {
	return func(cfg *includeConfig) {
		cfg.category = category
	}
}

// Include expands a bundle's declarations into the target's namespace. It is
// invoked once while the target type is assembled. Every declaration is a
// deep, independent copy; the target never shares mutable state with the
// bundle. A resolved name that already exists on the target is a
// definition-time error naming both sources, never a silent overwrite.
func Include(b Bundle, target Registrar, opts ...IncludeOption) error {
	if b.category == "" {
		return vperrors.NewDeclarationError("", "bundle has no category", nil)
	}
	if target == nil {
		return vperrors.NewDeclarationError("", "include target is nil", nil)
	}

	cfg := includeConfig{usePrefix: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.usePrefix && len(cfg.overrides) > 0 {
		return vperrors.NewDeclarationError("", "name overrides require unprefixed naming", nil)
	}
	for base := range cfg.overrides {
		if !bundleHas(b, base) {
			return vperrors.NewDeclarationError(base, fmt.Sprintf("override names no attribute in bundle %q", b.category), nil)
		}
	}

	for _, d := range b.Declarations() {
		name := d.Name
		if cfg.usePrefix {
			name = b.category + "_" + d.Name
		} else if override, ok := cfg.overrides[d.Name]; ok {
			name = override
		}

		if prev, exists := target.Lookup(name); exists {
			return vperrors.NewDeclarationError(name,
				fmt.Sprintf("already declared by %s, conflicts with bundle %q", describeOrigin(prev), b.category), nil)
		}

		help := d.Help
		if cfg.category != "" {
			help = strings.Replace(help, "%s", cfg.category, 1)
		}

		decl := Declaration{
			Name:    name,
			Spec:    d.Spec,
			Default: d.Default.clone(),
			Help:    help,
			Origin:  b.category,
		}
		if err := target.Declare(decl); err != nil {
			return err
		}
	}
	return nil
}

func bundleHas(b Bundle, base string) bool {
	for _, d := range b.decls {
		if d.Name == base {
			return true
		}
	}
	return false
}

func describeOrigin(d Declaration) string {
	if d.Origin == "" {
		return "the target container"
	}
	return fmt.Sprintf("bundle %q", d.Origin)
}
