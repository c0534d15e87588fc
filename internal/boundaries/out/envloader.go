package out

import "context"

// EnvLoader defines the contract for loading environment variables from files.
type EnvLoader interface {
	// Load reads every file in order and merges the variables. Later files
	// override earlier ones.
	Load(ctx context.Context, files ...string) (map[string]string, error)
}
