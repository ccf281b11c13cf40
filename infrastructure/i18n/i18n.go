// Package i18n loads the embedded locale files and resolves page labels for
// the language a request asks for.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator holds every loaded message and the locale used when a request
// names none that is available.
type Translator struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	tags     []language.Tag
	fallback string
}

// New parses the embedded locales. fallback is a language tag such as "en".
func New(fallback string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
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

	if fallback == "" {
		fallback = language.English.String()
	}
	t := &Translator{bundle: bundle, fallback: fallback}
	if !t.Has(fallback) {
		return nil, fmt.Errorf("fallback locale %q not loaded", fallback)
	}

	// The fallback goes first so the matcher picks it when nothing else fits.
	tags := []language.Tag{language.Make(fallback)}
	for _, tag := range t.Languages() {
		if tag != tags[0] {
			tags = append(tags, tag)
		}
	}
	t.matcher = language.NewMatcher(tags)
	t.tags = tags
	return t, nil
}

// Languages returns the tags of every loaded locale.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Has reports whether a locale for lang was loaded.
func (t *Translator) Has(lang string) bool {
	want, err := language.Parse(lang)
	if err != nil {
		return false
	}
	for _, tag := range t.Languages() {
		if tag == want {
			return true
		}
	}
	return false
}

// Messages resolves labels for one request.
type Messages struct {
	localizer *i18n.Localizer
	lang      language.Tag
}

// For returns the messages for an Accept-Language header value. Labels and
// Lang both come from the single locale the header matches.
func (t *Translator) For(acceptLanguage string) Messages {
	desired, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := t.matcher.Match(desired...)
	tag := t.tags[idx]
	return Messages{
		localizer: i18n.NewLocalizer(t.bundle, tag.String()),
		lang:      tag,
	}
}

// Lang is the locale the labels are served in.
func (m Messages) Lang() string {
	if m.lang == language.Und {
		return language.English.String()
	}
	return m.lang.String()
}

// T translates messageID, returning the id itself when no locale has it.
func (m Messages) T(messageID string) string {
	if m.localizer == nil {
		return messageID
	}
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
