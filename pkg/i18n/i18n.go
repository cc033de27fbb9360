package i18n

import (
	i18nv2 "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// I18n wraps a go-i18n bundle with message registration done in Go source
// (see pkg/locales) instead of external translation files.
type I18n struct {
	bundle *i18nv2.Bundle
}

func NewI18n() *I18n {
	return &I18n{
		bundle: i18nv2.NewBundle(language.English),
	}
}

// RegisterMessages adds one locale's messages to the bundle. Duplicated IDs
// within a locale indicate a wiring error and surface as an error here.
func (i *I18n) RegisterMessages(tag language.Tag, messages []*i18nv2.Message) error {
	return i.bundle.AddMessages(tag, messages...)
}

// TWithLanguage localizes key for a BCP 47 language string, resolving
// fallbacks through the bundle. An unknown key renders as the key itself so
// a missing translation never blanks a reply.
func (i *I18n) TWithLanguage(lang string, key string, args ...any) string {
	return i.localize(i18nv2.NewLocalizer(i.bundle, lang), key, args...)
}

// TWithTag localizes key for an exact language tag.
func (i *I18n) TWithTag(tag language.Tag, key string, args ...any) string {
	return i.localize(i18nv2.NewLocalizer(i.bundle, tag.String()), key, args...)
}

func (i *I18n) localize(localizer *i18nv2.Localizer, key string, args ...any) string {
	cfg := &i18nv2.LocalizeConfig{MessageID: key}

	if len(args) > 0 {
		cfg.TemplateData = args[0]
	}

	str, err := localizer.Localize(cfg)
	if err != nil {
		return key
	}

	return str
}
