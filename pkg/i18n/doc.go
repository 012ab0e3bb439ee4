// Package i18n renders translated messages from YAML or JSON catalogs.
//
// A catalog file is keyed by language at the top level. Nested maps are
// addressed with dot-separated keys and templates use %{name} placeholders:
//
//	en:
//	  proptypes:
//	    required: "Required %{location} `%{prop}` was not specified in `%{component}`."
//
// Catalogs are loaded through a TranslationAdapter. FSAdapter reads a
// directory of an fs.FS, which pairs well with embed.FS:
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//
// Requested languages are negotiated with golang.org/x/text/language, so
// "de-AT" is served by a "de" catalog. Keys missing in the negotiated
// language fall back to the default language, then to the key itself.
//
//	ctx = i18n.SetLocale(ctx, "de")
//	msg := tr.Translate(ctx, "proptypes.required", map[string]any{"prop": "items"})
package i18n
