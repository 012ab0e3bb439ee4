package i18n

// Catalog holds translations by language code. Each language maps keys to
// strings or to nested maps addressed with dot-separated keys.
type Catalog map[string]map[string]any
