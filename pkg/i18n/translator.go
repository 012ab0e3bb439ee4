package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no locale is requested.
const DefaultLanguage = "en"

// Translator renders translation keys with named %{param} placeholders.
// It is safe for concurrent use; the catalog is fixed at construction.
type Translator struct {
	translations   Catalog
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	matchLangs []string
	matcher    language.Matcher
}

// NewTranslator loads the adapter's catalog and builds a Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.buildMatcher()
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

func validateTranslations(trans Catalog) error {
	for lang, entries := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if entries == nil {
			return fmt.Errorf("%w: %s", ErrNilLanguageEntries, lang)
		}
	}
	return nil
}

// buildMatcher prepares language negotiation over the loaded languages. The
// default language goes first so it is the matcher's fallback.
func (t *Translator) buildMatcher() {
	ordered := t.SupportedLanguages()
	if i := slices.Index(ordered, t.defaultLang); i > 0 {
		ordered = append([]string{t.defaultLang}, slices.Delete(ordered, i, i+1)...)
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		t.matchLangs = append(t.matchLangs, lang)
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match returns the loaded language that best serves lang, such as "de" for
// "de-AT", or the default language when nothing matches.
func (t *Translator) Match(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if t.matcher == nil {
		return t.defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(t.matchLangs) {
		return t.defaultLang
	}
	return t.matchLangs[idx]
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	entries, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(entries, key)
	return ok
}

// T renders key in lang. The language is negotiated with Match, and keys
// missing there are looked up in the default language. Placeholders such as
// %{prop} are replaced with the printed value of params["prop"]; unknown
// placeholders are left as is.
func (t *Translator) T(lang, key string, params map[string]any) string {
	resolved := t.Match(lang)

	if tmpl, ok := t.template(resolved, key); ok {
		return interpolate(tmpl, params)
	}
	if resolved != t.defaultLang {
		if tmpl, ok := t.template(t.defaultLang, key); ok {
			return interpolate(tmpl, params)
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return interpolate(key, params)
	}
	return ""
}

// Translate renders key in the locale stored in ctx by SetLocale.
func (t *Translator) Translate(ctx context.Context, key string, params map[string]any) string {
	return t.T(GetLocale(ctx), key, params)
}

func (t *Translator) template(lang, key string) (string, bool) {
	entries, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(entries, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// lookup walks dot-separated keys through nested maps.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func interpolate(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
