package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader looks up values in a list of CUE files. Earlier files take precedence.
type Loader struct {
	getSources func() ([]source, error)
}

type source struct {
	file  string
	value cue.Value
}

// NewLoader returns a Loader over filePaths. Every file is unified with schemaSrc, wrapped in a
// closed struct, when schemaSrc is not empty. Files are read on first use.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getSources: sync.OnceValues(func() ([]source, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			sources := make([]source, 0, len(filePaths))
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					value = schema.Unify(value)
					if err := value.Validate(); err != nil {
						return nil, fmt.Errorf("validate %s: %w", filePath, err)
					}
				}
				sources = append(sources, source{
					file:  filePath,
					value: value,
				})
			}
			return sources, nil
		}),
	}
}

func (l Loader) lookup(path string) iter.Seq2[source, error] {
	return func(yield func(source, error) bool) {
		sources, err := l.getSources()
		if err != nil {
			yield(source{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, src := range sources {
			value := src.value.LookupPath(cuePath)
			if !value.Exists() || value.Err() != nil {
				continue
			}
			if !yield(source{file: src.file, value: value}, nil) {
				return
			}
		}
	}
}

// IterCueValues yields the value at path from every file defining it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		for src, err := range l.lookup(path) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&src.value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the value at path of the first file defining it into target. Decode
// errors name the file.
func (l Loader) AssignFirst(path string, target any) error {
	for src, err := range l.lookup(path) {
		if err != nil {
			return err
		}
		if err := src.value.Decode(target); err != nil {
			return fmt.Errorf("%s: decode %s: %w", src.file, path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
