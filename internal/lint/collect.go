// Package lint runs the scanner over batches of files and writes the
// resulting reports.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the extension of the documents ftlint checks.
const Ext = ".feature"

// Collect expands paths into the files to check. A directory contributes its
// own *.feature files in name order, without descending into
// subdirectories. A file is kept as given, whatever its extension.
func Collect(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
	}
	return files, nil
}
