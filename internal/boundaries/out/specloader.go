package out

import (
	"context"

	"github.com/bnema/localcontainers/internal/domain"
)

// SpecLoader reads container specs from a declarative file.
type SpecLoader interface {
	Load(ctx context.Context, path string) ([]domain.ContainerSpec, error)
}
