package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/maxvaer/dddtools/internal/inspect"
)

// jsonRecord is the success shape. Field order is part of the output.
type jsonRecord struct {
	Title     string `json:"title"`
	Filename  string `json:"filename"`
	Format    string `json:"format"`
	FileSize  int64  `json:"fileSize"`
	HeaderHex string `json:"headerHex"`
	Message   string `json:"message"`
}

type jsonError struct {
	Error string `json:"error"`
}

// JSONWriter writes a single inspection outcome as indented JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON output writer. A nil w means stdout.
func NewJSONWriter(w io.Writer) *JSONWriter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONWriter{w: w}
}

func (j *JSONWriter) WriteResult(result *inspect.Result) error {
	return j.encode(jsonRecord{
		Title:     result.Title,
		Filename:  result.Filename,
		Format:    result.Format,
		FileSize:  result.FileSize,
		HeaderHex: result.HeaderHex(),
		Message:   result.Message,
	})
}

func (j *JSONWriter) WriteError(msg string) error {
	return j.encode(jsonError{Error: msg})
}

func (j *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
