package inspect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HeaderLen is the maximum number of leading bytes read from a file.
const HeaderLen = 16

// Fixed fields of every successful inspection.
const (
	Title   = "Report from DDD header inspector"
	Format  = "DDD"
	Message = "This file was processed by the fallback header inspector."
)

// ErrIsDirectory is returned when the inspected path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// Result holds the coarse metadata gathered from a DDD file. It is built
// fresh for each call to File and never mutated afterwards.
type Result struct {
	Title    string
	Filename string
	Format   string
	FileSize int64
	Header   []byte // at most HeaderLen bytes
	Message  string
}

// HeaderHex returns the header bytes as a lowercase hex string.
func (r *Result) HeaderHex() string {
	return hex.EncodeToString(r.Header)
}

// File sizes and opens path, reads up to the first HeaderLen bytes, and
// returns the resulting metadata. The bytes are not interpreted: the format
// tag is always Format regardless of content. Any stat, open, or read
// failure is returned as an error and no Result is produced.
func File(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	header, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:    Title,
		Filename: filepath.Base(path),
		Format:   Format,
		FileSize: info.Size(),
		Header:   header,
		Message:  Message,
	}, nil
}

func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, HeaderLen)
	n, err := io.ReadFull(f, buf)
	// A file shorter than HeaderLen is fine; return what was there.
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return buf[:n], nil
}
