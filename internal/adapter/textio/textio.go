// Package textio resolves corpus sources and sinks from command-line paths.
package textio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdioToken selects standard input or standard output instead of a named file.
const StdioToken = "-"

const gzipSuffix = ".gz"

type options struct {
	gzip bool
}

// Option configures how a source or sink is opened.
type Option func(*options)

// WithGzip forces gzip decoding for sources and encoding for sinks. Named paths
// ending in ".gz" use gzip regardless.
func WithGzip(enabled bool) Option {
	return func(o *options) {
		o.gzip = o.gzip || enabled
	}
}

func resolveOptions(path string, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.gzip && !IsStdio(path) && strings.HasSuffix(strings.ToLower(path), gzipSuffix) {
		o.gzip = true
	}
	return o
}

// IsStdio reports whether path is the stdio token. An empty path counts as stdio.
func IsStdio(path string) bool {
	path = strings.TrimSpace(path)
	return path == "" || path == StdioToken
}

// Source is an opened input stream.
type Source struct {
	io.Reader
	closers closerChain
}

// Close releases the source's layers innermost-first. Standard input is never closed.
func (s *Source) Close() error {
	return s.closers.close()
}

// OpenSource opens path for reading, or returns stdin for the stdio token.
func OpenSource(path string, stdin io.Reader, opts ...Option) (*Source, error) {
	o := resolveOptions(path, opts)
	src := &Source{Reader: stdin}

	if !IsStdio(path) {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("textio: open source: %w", err)
		}
		src.Reader = file
		src.closers.push(file.Close)
	}

	if o.gzip {
		gzr, err := gzip.NewReader(src.Reader)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("textio: create gzip reader: %w", err)
		}
		src.Reader = gzr
		src.closers.push(gzr.Close)
	}
	return src, nil
}

// Sink is an opened output stream.
type Sink struct {
	io.Writer
	closers closerChain
}

// Close flushes and releases the sink's layers innermost-first. Standard output is never closed.
func (s *Sink) Close() error {
	return s.closers.close()
}

// OpenSink creates path for writing, making parent directories as needed, or
// returns stdout for the stdio token. An existing file is truncated.
func OpenSink(path string, stdout io.Writer, opts ...Option) (*Sink, error) {
	o := resolveOptions(path, opts)
	sink := &Sink{Writer: stdout}

	if !IsStdio(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("textio: create output directory: %w", err)
		}
		file, err := os.Create(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("textio: create sink: %w", err)
		}
		sink.Writer = file
		sink.closers.push(file.Close)
	}

	if o.gzip {
		gz := gzip.NewWriter(sink.Writer)
		sink.Writer = gz
		sink.closers.push(gz.Close)
	}
	return sink, nil
}

// closerChain runs the most recently pushed closer first and only once.
type closerChain struct {
	fns []func() error
}

func (c *closerChain) push(fn func() error) {
	c.fns = append([]func() error{fn}, c.fns...)
}

func (c *closerChain) close() (err error) {
	fns := c.fns
	c.fns = nil
	for _, fn := range fns {
		if cerr := fn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
