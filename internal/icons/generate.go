package icons

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// Generate renders every spec at the given size and writes <name>.png files
// into outDir, creating it if needed. It returns the written paths in
// catalog order. An existing file with the same name is overwritten.
func Generate(outDir string, size int) ([]string, error) {
	if outDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	written := make([]string, 0, len(specs))
	for _, spec := range specs {
		img, err := Render(spec, size)
		if err != nil {
			return written, err
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return written, fmt.Errorf("encoding %s: %w", spec.Name, err)
		}

		path := filepath.Join(outDir, spec.Filename())
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
