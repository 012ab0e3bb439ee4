package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a translation file whose top level is keyed by language.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)
}

// NewParserForFile returns the parser for filename's extension, or nil when
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
