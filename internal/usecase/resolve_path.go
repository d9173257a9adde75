package usecase

import (
	"context"

	"labctl/internal/domain"
)

// ResolvePathInput contains the name to resolve.
type ResolvePathInput struct {
	Name string
}

// ResolvePathOutput contains the resolution result.
type ResolvePathOutput struct {
	Path  string
	Found bool
}

// ResolvePath looks a filename up in the repository path index.
type ResolvePath struct {
	resolver domain.PathResolver
}

// NewResolvePath creates a new ResolvePath use case.
func NewResolvePath(resolver domain.PathResolver) *ResolvePath {
	return &ResolvePath{resolver: resolver}
}

// Execute resolves the name. A miss is not an error.
func (uc *ResolvePath) Execute(_ context.Context, in ResolvePathInput) (*ResolvePathOutput, error) {
	path, found := uc.resolver.Resolve(in.Name)
	return &ResolvePathOutput{
		Path:  path,
		Found: found,
	}, nil
}
