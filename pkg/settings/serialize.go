package settings

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/uuid"
	"github.com/zeebo/errs"

	"github.com/ib-77/ex/pkg/ex"
	"github.com/ib-77/ex/pkg/ex/solo"
	"github.com/ib-77/ex/pkg/filename"
)

const indent = "  "

// ErrNothingStored marks a settings file that exists but is empty.
var ErrNothingStored = errors.New("nothing stored")

func Serialize[T any](data T) ex.Result[string] {
	return ex.OfErr(func() (string, error) {
		b, err := json.MarshalIndent(data, "", indent)
		if err != nil {
			return "", errs.Wrap(err)
		}
		return string(b), nil
	})
}

func Deserialize[T any](data ex.Result[string]) ex.Result[T] {
	return solo.TryErr(data, func(d string) (T, error) {
		var v T
		if err := json.Unmarshal([]byte(d), &v); err != nil {
			return v, ex.DeserializeErrorWith(typeName[T](), "", err)
		}
		return v, nil
	})
}

// SerializeToFile writes data as indented JSON. The content goes to a
// temporary file in the same directory first and is renamed over the target,
// so a failed write leaves the previous content in place.
func SerializeToFile[T any](data T, fileName ex.Result[*filename.FileName]) ex.Result[bool] {
	return solo.TryErr(fileName, func(fn *filename.FileName) (bool, error) {
		b, err := json.MarshalIndent(data, "", indent)
		if err != nil {
			return false, errs.Wrap(err)
		}

		tmp := filepath.Join(fn.Dir, "."+fn.NameExt+"."+uuid.NewString()+".tmp")
		if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
			return false, errs.Wrap(err)
		}
		if err := os.Rename(tmp, fn.Path); err != nil {
			_ = os.Remove(tmp)
			return false, errs.Wrap(err)
		}
		return true, nil
	})
}

// DeserializeFromFile reads a T from the file. A missing file keeps
// fs.ErrNotExist, an empty one fails with ErrNothingStored, and undecodable
// content fails with an *ex.DeserializeErr.
func DeserializeFromFile[T any](fileName ex.Result[*filename.FileName]) ex.Result[T] {
	return solo.TryErr(fileName, func(fn *filename.FileName) (T, error) {
		var v T

		f, err := os.Open(fn.Path)
		if err != nil {
			return v, errs.Wrap(err)
		}
		defer func() { _ = f.Close() }()

		if err := json.NewDecoder(f).Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return v, errs.Wrap(ErrNothingStored)
			}
			return v, ex.DeserializeErrorWith(typeName[T](), fn.Path, err)
		}
		return v, nil
	})
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
