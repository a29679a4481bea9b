package golden

import "fmt"

// SourceNotFoundError reports a missing corpus file. It is fatal: there
// is nothing to run against.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("corpus file not found at %s", e.Path)
}

// DatasetMissingError reports a missing golden dataset file. It is
// fatal and carries the remediation in its message.
type DatasetMissingError struct {
	Path string
}

func (e *DatasetMissingError) Error() string {
	return fmt.Sprintf("golden dataset not found at %s. Run 'golden generate' first.", e.Path)
}

// DatasetCorruptError reports a golden dataset file that does not parse
// into the expected tagged-union schema.
type DatasetCorruptError struct {
	Path string
	Err  error
}

func (e *DatasetCorruptError) Error() string {
	return fmt.Sprintf("golden dataset at %s is corrupt: %v", e.Path, e.Err)
}

func (e *DatasetCorruptError) Unwrap() error { return e.Err }
