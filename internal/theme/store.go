package theme

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
	"github.com/AvengeMedia/dankgruvbox/internal/log"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
)

// DefaultDir is where generated documents go unless told otherwise.
const DefaultDir = "themes"

// Path is the fixed location of the variant's document under dir.
func Path(dir string, variant config.Variant) string {
	return filepath.Join(dir, fmt.Sprintf("gruvbox-material-%s.json", variant))
}

// Write stores t under dir and returns the path written.
func Write(fs afero.Fs, dir string, t vscode.Theme) (string, error) {
	variant, err := config.ParseVariant(t.Type)
	if err != nil {
		return "", err
	}
	data, err := vscode.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", t.Name, err)
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := Path(dir, variant)
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	log.Debugf("Wrote %s (%d colors, %d token rules)", path, len(t.Colors), len(t.TokenColors))
	return path, nil
}

func Read(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
