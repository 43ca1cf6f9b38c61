package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// OriginBuiltin marks a store built from the in-code corpus.
const OriginBuiltin = "builtin"

// Load reads the corpus file at path. Files ending in .json are legacy
// corpora; anything else is opened as a snapshot.
func Load(path string) (*Store, error) {
	var src Source
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err := LoadLegacy(path)
		if err != nil {
			return nil, err
		}
		src = c
	} else {
		c, _, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		src = c
	}

	store, err := NewStore(src)
	if err != nil {
		return nil, fmt.Errorf("building corpus from %s: %w", path, err)
	}
	return store.WithOrigin(path), nil
}

// LoadOrDefault tries each path in order and returns the first corpus that
// loads. When none does, it falls back to the built-in corpus. Failures are
// logged and never returned.
func LoadOrDefault(ctx context.Context, logger *slog.Logger, paths ...string) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		store, err := Load(path)
		if err != nil {
			logger.WarnContext(ctx, "corpus load failed", "path", path, "error", err)
			continue
		}
		logger.InfoContext(ctx, "corpus loaded", "path", path, "subjects", len(store.Subjects()), "pairs", store.Len())
		return store
	}

	store, err := NewStore(Builtin())
	if err != nil {
		// The built-in corpus is static; failing here is a programming error.
		panic(fmt.Sprintf("building builtin corpus: %v", err))
	}
	logger.InfoContext(ctx, "using builtin corpus", "subjects", len(store.Subjects()), "pairs", store.Len())
	return store.WithOrigin(OriginBuiltin)
}
