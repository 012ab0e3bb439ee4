package proptypes

import (
	"context"
	"embed"
	"errors"

	"github.com/dmitrymomot/immutableprops/pkg/i18n"
)

// Locales holds the bundled failure message catalogs, one file per language.
//
//go:embed locales
var Locales embed.FS

// Translator renders a failure's translation key in the locale carried by ctx.
// *i18n.Translator satisfies it.
type Translator interface {
	Translate(ctx context.Context, key string, params map[string]any) string
}

// NewTranslator loads the bundled catalogs. English is the default language.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(Locales, "locales"), opts...)
}

// Localize returns the translated message of every failure in err, in order.
// Errors that carry no translation key keep their own message.
func Localize(ctx context.Context, tr Translator, err error) []string {
	if err == nil {
		return nil
	}

	if verrs := ExtractValidationErrors(err); verrs != nil {
		msgs := make([]string, 0, len(verrs))
		for _, ve := range verrs {
			msgs = append(msgs, localize(ctx, tr, ve.TranslationKey, ve.TranslationValues, ve.Message))
		}
		return msgs
	}

	var f *Failure
	if errors.As(err, &f) {
		return []string{localize(ctx, tr, f.TranslationKey, f.TranslationValues, f.Message)}
	}
	return []string{err.Error()}
}

func localize(ctx context.Context, tr Translator, key string, params map[string]any, fallback string) string {
	if tr == nil || key == "" {
		return fallback
	}
	return tr.Translate(ctx, key, params)
}
