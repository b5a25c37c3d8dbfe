// Package theme assembles complete color theme documents and persists them.
package theme

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/semantic"
	"github.com/AvengeMedia/dankgruvbox/internal/syntax"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
	"github.com/AvengeMedia/dankgruvbox/internal/workbench"
)

const namePrefix = "Gruvbox Material"

// Name is the display name of the theme for variant.
func Name(variant config.Variant) string {
	return namePrefix + " " + variant.Title()
}

// Assemble builds the full theme document for variant.
func Assemble(cfg config.Config, variant config.Variant) (vscode.Theme, error) {
	if _, err := config.ParseVariant(string(variant)); err != nil {
		return vscode.Theme{}, err
	}

	colors, err := workbench.Generate(cfg, variant)
	if err != nil {
		return vscode.Theme{}, fmt.Errorf("workbench colors: %w", err)
	}
	tokenColors, err := syntax.Generate(cfg, variant)
	if err != nil {
		return vscode.Theme{}, fmt.Errorf("token colors: %w", err)
	}
	semanticTokenColors, err := semantic.Generate(cfg, variant)
	if err != nil {
		return vscode.Theme{}, fmt.Errorf("semantic token colors: %w", err)
	}

	return vscode.Theme{
		Name:                 Name(variant),
		Type:                 string(variant),
		SemanticHighlighting: true,
		SemanticTokenColors:  semanticTokenColors,
		Colors:               colors,
		TokenColors:          tokenColors,
	}, nil
}

// AssembleAll builds one document per variant concurrently, returned in the order given.
func AssembleAll(ctx context.Context, cfg config.Config, variants ...config.Variant) ([]vscode.Theme, error) {
	themes := make([]vscode.Theme, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Assemble(cfg, v)
			if err != nil {
				return fmt.Errorf("%s theme: %w", v, err)
			}
			themes[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return themes, nil
}
