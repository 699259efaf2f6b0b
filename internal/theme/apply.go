package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/vizprops/internal/logger"
	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
	"github.com/alexisbeaulieu97/vizprops/pkg/mixins"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

// Materialize builds one container per style target: the listed bundles are
// included under prefixed names with the bundle category substituted into the
// help placeholders, then every attribute value from the document is assigned
// through its spec. The result maps target names to fully validated
// containers.
func Materialize(t *Theme, log *logger.Logger) (map[string]*property.Container, error) {
	if t == nil {
		return nil, vperrors.NewThemeError("", 0, fmt.Errorf("theme is nil"))
	}

	out := make(map[string]*property.Container, len(t.Styles))
	for _, style := range t.Styles {
		container := property.NewContainer()

		for _, category := range style.Include {
			bundle, ok := mixins.ByCategory(category)
			if !ok {
				return nil, vperrors.NewThemeError("", 0, fmt.Errorf("style %q includes unknown bundle %q", style.Target, category))
			}
			if err := property.Include(bundle, container, property.WithHelpCategory(category)); err != nil {
				return nil, err
			}
		}

		for name, value := range style.Attrs {
			if err := container.Set(name, value.Raw()); err != nil {
				return nil, err
			}
		}

		log.WithField("target", style.Target).Debug(fmt.Sprintf("materialized %d attributes", len(container.Names())))
		out[style.Target] = container
	}

	return out, nil
}
