package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Write stores one CSV file per table under dir, creating dir if absent.
// Files are named "<plant>_<name>.csv"; rows follow generation order.
// Tables are written in sorted-name order so the returned path list is
// deterministic. Any I/O error aborts the whole write.
func Write(dir, plant string, tables map[string]Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create output dir: %w", err)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", plant, name))
		if err := writeOne(path, tables[name]); err != nil {
			return nil, fmt.Errorf("dataset: write %s: %w", name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeOne(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(t.Header()); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		if err = w.Write(t.Row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}

	return f.Close()
}
