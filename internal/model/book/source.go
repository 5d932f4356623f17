package book

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"os"
)

//go:embed data/books.json
var embedded embed.FS

// Source is where the raw JSON collection comes from.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads the collection from a file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// FSSource reads the collection from a path inside an fs.FS.
type FSSource struct {
	FS   fs.FS
	Path string
}

func (s FSSource) Name() string { return "fs:" + s.Path }

func (s FSSource) Open() (io.ReadCloser, error) {
	return s.FS.Open(s.Path)
}

// BytesSource serves a fixed JSON document from memory.
type BytesSource struct {
	Label string
	Data  []byte
}

func (s BytesSource) Name() string {
	if s.Label == "" {
		return "memory"
	}
	return "memory:" + s.Label
}

func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// EmbeddedSource returns the dataset compiled into the binary.
func EmbeddedSource() Source {
	return FSSource{FS: embedded, Path: "data/books.json"}
}
