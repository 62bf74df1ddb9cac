package input

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// errIsDirectory is the cause carried by a NotFoundError for a directory path.
var errIsDirectory = errors.New("is a directory")

// byteOrderMark is the UTF-8 encoding of U+FEFF.
const byteOrderMark = "\ufeff"

// OpenFile opens path for reading. An empty path is an ErrInvalidArgument.
// A path that cannot be opened, or that names a directory, is a
// *NotFoundError.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "path cannot be empty")
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &NotFoundError{Path: path, Err: errIsDirectory}
	}

	return f, nil
}

// TrimBOM removes a leading UTF-8 byte order mark from the first line of a file.
func TrimBOM(text string) string {
	return strings.TrimPrefix(text, byteOrderMark)
}
