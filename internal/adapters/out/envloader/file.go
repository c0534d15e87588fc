// Package envloader implements the environment variable loader adapter.
package envloader

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/joho/godotenv"

	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

var _ out.EnvLoader = (*FileLoader)(nil)

// FileLoader implements the EnvLoader interface over dotenv files.
type FileLoader struct {
	baseDir string
}

// NewFileLoader creates a loader resolving relative paths against baseDir.
// An empty baseDir means the working directory.
func NewFileLoader(baseDir string) *FileLoader {
	return &FileLoader{baseDir: baseDir}
}

// Load reads files in order; a key set by a later file wins.
func (l *FileLoader) Load(ctx context.Context, files ...string) (map[string]string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "envloader",
		zerowrap.FieldAction:  "Load",
	})
	log := zerowrap.FromCtx(ctx)

	env := make(map[string]string)
	for _, file := range files {
		path := l.resolve(file)

		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for key := range vars {
			if err := domain.ValidateEnvKey(key); err != nil {
				return nil, fmt.Errorf("env file %s: %w", path, err)
			}
		}
		maps.Copy(env, vars)

		log.Debug().Str("env_file", path).Int(zerowrap.FieldCount, len(vars)).Msg("env file loaded")
	}

	return env, nil
}

func (l *FileLoader) resolve(file string) string {
	if filepath.IsAbs(file) || l.baseDir == "" {
		return file
	}
	return filepath.Join(l.baseDir, file)
}
