package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("config value not found")

// Loader reads cue files lazily. Earlier files take precedence in lookups.
type Loader struct {
	getFiles func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

// NewLoader returns a Loader over filePaths. Every file must unify with schemaSrc,
// the body of a closed cue struct, when it is not empty.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getFiles: sync.OnceValues(func() ([]file, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			files := make([]file, 0, len(filePaths))
			for _, path := range filePaths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return nil, fmt.Errorf("%s: %w", path, err)
					}
				}
				files = append(files, file{
					path:  path,
					value: value,
				})
			}
			return files, nil
		}),
	}
}

// Values yields the value at path in every file that defines it.
func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		files, err := l.getFiles()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first value at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// Err reports the error of reading, compiling or validating the files.
func (l Loader) Err() error {
	_, err := l.getFiles()
	return err
}

// Paths returns the loaded file paths.
func (l Loader) Paths() ([]string, error) {
	files, err := l.getFiles()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}
	return paths, nil
}
