package zig

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/apparentlymart/spirv-meta/registry"
)

// stickyWriter remembers the first write error and refuses all writes
// after it. Callers check err once per declaration.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = errors.WithStack(&sinkError{err: err})
	}
	return n, s.err
}

// sinkError is a write failure. It matches registry.ErrSinkWrite and
// unwraps to the writer's own error.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string {
	return registry.ErrSinkWrite.Error() + ": " + e.err.Error()
}

func (e *sinkError) Is(target error) bool {
	return target == registry.ErrSinkWrite
}

func (e *sinkError) Unwrap() error {
	return e.err
}

func (s *stickyWriter) print(str string) {
	io.WriteString(s, str)
}

func (s *stickyWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(s, format, args...)
}
