package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

// GetBundle returns the message bundle built from the embedded locale files.
func GetBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		paths, err := fs.Glob(localeFiles, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, path := range paths {
			if _, err := b.LoadMessageFileFS(localeFiles, path); err != nil {
				bundleErr = fmt.Errorf("load %s: %w", path, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Localizer renders view labels in one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer returns a Localizer for locale. Messages missing from the
// locale fall back to English.
func NewLocalizer(locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	b, err := GetBundle()
	if err != nil {
		return nil, err
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String(), language.English.String()),
	}, nil
}

// Tag returns the requested language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Text renders the message id with data. A message missing from the locale
// renders in English, and an id unknown to every locale renders as the id.
func (l *Localizer) Text(id string, data map[string]any) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("missing message", "id", id, "locale", l.tag.String(), "error", err)
	}
	if s == "" {
		return id
	}
	return s
}
