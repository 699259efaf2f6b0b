package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	styleIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("style_id", func(fl validator.FieldLevel) bool {
			return styleIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-style validation on a theme document.
func Validate(t *Theme) error {
	if t == nil {
		return vperrors.NewThemeError("", 0, fmt.Errorf("theme is nil"))
	}

	v := validatorInstance()
	if err := v.Struct(t); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(t.Styles))
	for i, style := range t.Styles {
		if _, dup := seen[style.Target]; dup {
			return vperrors.NewThemeError("", 0, fmt.Errorf("styles[%d]: duplicate target %q", i, style.Target))
		}
		seen[style.Target] = struct{}{}

		bundles := make(map[string]struct{}, len(style.Include))
		for _, category := range style.Include {
			if _, dup := bundles[category]; dup {
				return vperrors.NewThemeError("", 0, fmt.Errorf("styles[%d]: bundle %q included twice", i, category))
			}
			bundles[category] = struct{}{}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return vperrors.NewThemeError("", 0, invalid)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.TrimPrefix(fe.Namespace(), "Theme.")
		return vperrors.NewThemeError("", 0, fmt.Errorf("%s failed %q validation", field, fe.Tag()))
	}

	return vperrors.NewThemeError("", 0, err)
}
