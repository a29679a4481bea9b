package golden

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the dataset to path as a pretty-printed JSON array in
// corpus order, creating missing parent directories. An existing file
// is overwritten unconditionally: the golden dataset is only ever
// replaced wholesale, never merged. Non-ASCII characters are written
// literally so the file diffs cleanly in version control.
func Save(dataset Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create golden dataset file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode golden dataset: %w", err)
	}
	return f.Close()
}

// Load reads a previously saved dataset, reconstructing entry order and
// the ordered words/syllables sequences exactly as persisted. A missing
// file yields *DatasetMissingError, unparseable content
// *DatasetCorruptError.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DatasetMissingError{Path: path}
		}
		return nil, fmt.Errorf("failed to read golden dataset: %w", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, &DatasetCorruptError{Path: path, Err: err}
	}
	return dataset, nil
}
