// Package i18n provides the user-facing message catalogue. Translations are
// YAML files embedded from the locales directory and resolved with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog translates message IDs into one language, falling back to English.
type Catalog struct {
	lang      string
	localizer *goi18n.Localizer
}

// New loads every embedded locale and returns a Catalog for lang.
func New(lang string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	return &Catalog{lang: lang, localizer: goi18n.NewLocalizer(bundle, lang)}, nil
}

// MustNew is New for callers with a known-good language tag, such as tests.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Lang returns the language the catalog was created for.
func (c *Catalog) Lang() string {
	return c.lang
}

// T translates id, filling template fields from data. Unknown IDs are
// returned unchanged.
func (c *Catalog) T(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
