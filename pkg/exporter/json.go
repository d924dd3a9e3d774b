package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

// Encode writes v as JSON. Non-ASCII text is written as is; pretty indents
// nested values by two spaces.
func Encode(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// FileName returns the per-group file name "{institute}_{group}.json".
func FileName(r *timetable.Result) string {
	return safeName(r.Faculty) + "_" + safeName(r.Group) + ".json"
}

func safeName(s string) string {
	return strings.NewReplacer("/", "-", `\`, "-", string(os.PathSeparator), "-").Replace(s)
}

// JSONWriter writes timetables as JSON documents.
//
// Without a Path everything goes to Stdout. With a Path, Multi writes one
// file per group into the Path directory and a batch otherwise becomes one
// combined file at Path. Single results always go to per-group files when
// a Path is set.
type JSONWriter struct {
	Path   string
	Multi  bool
	Pretty bool
	Stdout io.Writer
}

// WriteResult writes the timetable of one group.
func (w *JSONWriter) WriteResult(_ context.Context, r *timetable.Result) error {
	if w.Path == "" {
		return Encode(w.stdout(), r, w.Pretty)
	}
	return w.writeGroupFile(r)
}

// WriteBatch writes the timetables of several groups.
func (w *JSONWriter) WriteBatch(_ context.Context, results []*timetable.Result) error {
	if results == nil {
		results = []*timetable.Result{}
	}

	switch {
	case w.Path == "":
		return Encode(w.stdout(), results, w.Pretty)
	case w.Multi:
		for _, r := range results {
			if err := w.writeGroupFile(r); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeFile(w.Path, results, w.Pretty)
	}
}

func (w *JSONWriter) writeGroupFile(r *timetable.Result) error {
	if err := os.MkdirAll(w.Path, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return writeFile(filepath.Join(w.Path, FileName(r)), r, w.Pretty)
}

func (w *JSONWriter) stdout() io.Writer {
	if w.Stdout != nil {
		return w.Stdout
	}
	return os.Stdout
}

func writeFile(path string, v any, pretty bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, v, pretty); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
