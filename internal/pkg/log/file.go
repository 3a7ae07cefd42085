package log

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// File is the log file of one CLI invocation.
// The file is outside of the working directory, so it is not accessed through the afero filesystem.
type File struct {
	file *os.File
	path string
	temp bool
}

// NewLogFile opens the file from the --log-file flag.
// If the path is empty, a temporary file is created. It is kept only if the command fails.
func NewLogFile(path string) (*File, error) {
	f := &File{}
	if path == "" {
		suffix := ""
		random := make([]byte, 6)
		if _, err := rand.Read(random); err == nil {
			suffix = fmt.Sprintf("-%x", random)
		}
		// nolint: forbidigo
		f.path = filepath.Join(os.TempDir(), fmt.Sprintf("crm-cli-%d%s.txt", time.Now().Unix(), suffix))
		f.temp = true
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		f.path = abs
	}

	// nolint: forbidigo
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, `cannot open log file "%s"`, f.path)
	}
	f.file = file
	return f, nil
}

func (f *File) File() *os.File {
	return f.file
}

func (f *File) Path() string {
	return f.path
}

func (f *File) IsTemp() bool {
	return f.temp
}

// TearDown closes the file. A temporary file is removed if no error occurred.
func (f *File) TearDown(errorOccurred bool) error {
	if f == nil {
		return nil
	}
	if err := f.file.Close(); err != nil {
		return errors.Wrapf(err, `cannot close log file "%s"`, f.path)
	}
	if !errorOccurred && f.temp {
		// nolint: forbidigo
		if err := os.Remove(f.path); err != nil {
			return errors.Wrapf(err, `cannot remove temp log file "%s"`, f.path)
		}
	}
	return nil
}
