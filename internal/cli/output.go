package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/depview/pkg/errors"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output directory")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}

// reportOutput prints where the result went, unless it went to stdout.
func reportOutput(path string) {
	if path == stdoutPath {
		return
	}
	printFile(path)
}
