package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter loads a Catalog from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data Catalog
}

func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	if a.Data == nil {
		return Catalog{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every .json, .yaml and .yml file in one directory of a
// file system, such as an embed.FS. Files are read in name order; when two
// files define the same key for a language the later file wins. Nested
// sections are merged key by key.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns an adapter reading dir in fsys. An empty dir means the
// root of fsys.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (Catalog, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(Catalog)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalog, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		merge(result, catalog)
	}
	return result, nil
}

func merge(dst, src Catalog) {
	for lang, entries := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(entries))
		}
		mergeEntries(dst[lang], entries)
	}
}

func mergeEntries(dst, src map[string]any) {
	for key, val := range src {
		srcSection, srcOK := val.(map[string]any)
		dstSection, dstOK := dst[key].(map[string]any)
		if srcOK && dstOK {
			mergeEntries(dstSection, srcSection)
			continue
		}
		if srcOK {
			cp := make(map[string]any, len(srcSection))
			mergeEntries(cp, srcSection)
			dst[key] = cp
			continue
		}
		dst[key] = val
	}
}
