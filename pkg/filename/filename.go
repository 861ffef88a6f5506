// Package filename wraps a path to an existing file and reports every
// filesystem fault as a failed ex.Result.
package filename

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/errs"

	"github.com/ib-77/ex/pkg/check"
	"github.com/ib-77/ex/pkg/ex"
	"github.com/ib-77/ex/pkg/ex/solo"
)

// FileName describes a file that existed when it was opened.
type FileName struct {
	Path     string
	Dir      string
	Name     string
	Ext      string
	NameExt  string
	OpenedAt time.Time
}

func newFileName(path string) (*FileName, error) {
	check.NotBlank(path, "path")

	info, err := os.Stat(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if info.IsDir() {
		return nil, errs.New("%s is a directory", path)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)

	return &FileName{
		Path:     path,
		Dir:      filepath.Dir(path),
		Name:     strings.TrimSuffix(base, ext),
		Ext:      ext,
		NameExt:  base,
		OpenedAt: time.Now(),
	}, nil
}

// Open wraps an existing file. A missing file is a failure matching
// fs.ErrNotExist.
func Open(path string) ex.Result[*FileName] {
	return ex.OfErrWith(path, newFileName)
}

// OpenOrCreate opens path, creating the file and its parent directories when
// it does not exist yet.
func OpenOrCreate(path string) ex.Result[*FileName] {
	return ex.OfErr(func() (*FileName, error) {
		check.NotBlank(path, "path")

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if dir := filepath.Dir(path); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, errs.Wrap(err)
				}
			}

			f, err := os.Create(path)
			if err != nil {
				return nil, errs.Wrap(err)
			}
			if err := f.Close(); err != nil {
				return nil, errs.Wrap(err)
			}
		}

		return newFileName(path)
	})
}

// Lines reads the file and splits it into lines without their terminators.
func (f *FileName) Lines() ex.Result[[]string] {
	return solo.Map(f.Bytes(), func(data []byte) []string {
		lines := []string{}
		scanner := bufio.NewScanner(bytes.NewReader(data))
		scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			panic(errs.Wrap(err))
		}
		return lines
	})
}

func (f *FileName) Bytes() ex.Result[[]byte] {
	return ex.OfErrWith(f.Path, os.ReadFile)
}

// Exists reports whether the wrapped file is still present.
func Exists(fileName ex.Result[*FileName]) bool {
	return solo.IsTrue(fileName, func(fn *FileName) bool {
		_, err := os.Stat(fn.Path)
		return err == nil
	})
}

// Delete removes the wrapped file if it is still present.
func Delete(fileName ex.Result[*FileName]) ex.Result[bool] {
	return solo.TryBool(fileName, func(fn *FileName) {
		if err := os.Remove(fn.Path); err != nil && !os.IsNotExist(err) {
			panic(errs.Wrap(err))
		}
	})
}
