package runners

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/lox/loxlang"
)

var ErrNotLoxFile = errors.New("only .lox files may be run")

// RunFile runs the whole file at path as one program.
type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	runSource RunSource,
) RunFile {
	return func(ctx context.Context, path string) error {
		if filepath.Ext(path) != ".lox" {
			return fmt.Errorf("%w: %s", ErrNotLoxFile, path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return wrap(err)
		}
		_, err = runSource(ctx, loxlang.NewSource(path, string(content)))
		return err
	}
}

// RunReader runs everything read from r as one program.
type RunReader func(ctx context.Context, name string, r io.Reader) error

func (Module) RunReader(
	runSource RunSource,
) RunReader {
	return func(ctx context.Context, name string, r io.Reader) error {
		content, err := io.ReadAll(r)
		if err != nil {
			return wrap(err)
		}
		_, err = runSource(ctx, loxlang.NewSource(name, string(content)))
		return err
	}
}
