package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kernelbench/internal/report"
)

// ResultStore writes the finished run document to disk. One file per
// run; the harness keeps no cross-run history.
type ResultStore struct {
	Path string
}

func (s ResultStore) Save(r report.Run) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	return os.WriteFile(s.Path, b, 0o600)
}
