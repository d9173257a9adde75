package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"labctl/internal/domain"
)

// ShowFactsInput contains the parameters for showing hypervisor facts.
type ShowFactsInput struct {
	ConfigPath string // Empty = embedded default config
}

// ShowFactsOutput contains the rendered facts.
type ShowFactsOutput struct {
	JSON string // Indented JSON of the HyperV section
}

// ShowFacts loads a lab config and renders its HyperV section.
type ShowFacts struct {
	loader domain.ConfigLoader
}

// NewShowFacts creates a new ShowFacts use case.
func NewShowFacts(loader domain.ConfigLoader) *ShowFacts {
	return &ShowFacts{loader: loader}
}

// Execute loads the config and renders the facts.
func (uc *ShowFacts) Execute(_ context.Context, in ShowFactsInput) (*ShowFactsOutput, error) {
	cfg, err := loadConfig(uc.loader, in.ConfigPath)
	if err != nil {
		return nil, err
	}

	rendered, err := json.MarshalIndent(cfg.HyperV(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render facts: %w", err)
	}
	return &ShowFactsOutput{JSON: string(rendered)}, nil
}

func loadConfig(loader domain.ConfigLoader, path string) (domain.Config, error) {
	if path == "" {
		return loader.LoadDefault()
	}
	return loader.Load(path)
}
