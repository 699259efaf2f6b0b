package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vizprops/internal/logger"
	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
)

// Load reads, parses, and validates a stylesheet document from disk.
func Load(path string, log *logger.Logger) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vperrors.NewThemeError(path, 0, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Theme
	if err := dec.Decode(&t); err != nil {
		return nil, vperrors.NewThemeError(path, 0, err)
	}

	if err := Validate(&t); err != nil {
		return nil, annotate(err, path)
	}

	log.WithField("theme", t.Name).Debug(fmt.Sprintf("loaded %d styles from %s", len(t.Styles), path))
	return &t, nil
}

// annotate stamps the source path onto theme errors produced after parsing.
func annotate(err error, path string) error {
	var te *vperrors.ThemeError
	if errors.As(err, &te) && te.Path == "" {
		te.Path = path
		return te
	}
	return err
}
