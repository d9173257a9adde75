package usecase

import (
	"context"
	"fmt"

	"labctl/internal/domain"
)

// UpdateIndexInput contains the regeneration filters.
type UpdateIndexInput struct {
	ScanDirs  []string
	RootFiles []string
}

// UpdateIndex regenerates the persisted path index from git-tracked files.
type UpdateIndex struct {
	writer domain.PathIndexWriter
}

// NewUpdateIndex creates a new UpdateIndex use case.
func NewUpdateIndex(writer domain.PathIndexWriter) *UpdateIndex {
	return &UpdateIndex{writer: writer}
}

// Execute rebuilds the index.
func (uc *UpdateIndex) Execute(_ context.Context, in UpdateIndexInput) error {
	err := uc.writer.Update(domain.IndexUpdateOptions{
		ScanDirs:  in.ScanDirs,
		RootFiles: in.RootFiles,
	})
	if err != nil {
		return fmt.Errorf("update path index: %w", err)
	}
	return nil
}
