package bee

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Palette decorates rendered text. Header styles record header lines and Key
// styles mapping keys.
type Palette struct {
	Header func(string) string
	Key    func(string) string
}

// PlainPalette returns a palette that leaves text unchanged.
func PlainPalette() Palette {
	identity := func(s string) string { return s }
	return Palette{Header: identity, Key: identity}
}

// Renderer prints records from a Store. It only reads the store.
type Renderer struct {
	Store   *Store
	Stdout  io.Writer
	Files   Appender
	Logger  *slog.Logger
	Palette Palette
}

// NewRenderer returns a Renderer writing plain text to stdout.
func NewRenderer(store *Store, stdout io.Writer, files Appender, logger *slog.Logger) *Renderer {
	return &Renderer{
		Store:   store,
		Stdout:  stdout,
		Files:   files,
		Logger:  logger,
		Palette: PlainPalette(),
	}
}

// RenderAll prints every record as an indented tree under a header line.
func (r *Renderer) RenderAll() error {
	if r.Store.Len() == 0 {
		r.Logger.Info("no data loaded")
		return nil
	}

	var buf bytes.Buffer
	for _, rec := range r.Store.All() {
		buf.WriteString(r.Palette.Header("Data from "+rec.ID+":") + "\n")
		writeTree(&buf, rec.Tree, 2, r.Palette)
	}
	_, err := r.Stdout.Write(buf.Bytes())
	return err
}

// RenderKey prints the value of key from every record that has it at the
// top level. A mapping value is expanded recursively.
func (r *Renderer) RenderKey(key string) error {
	if r.Store.Len() == 0 {
		r.Logger.Info("no data loaded")
		return nil
	}

	var buf bytes.Buffer
	for _, rec := range r.Store.All() {
		v, ok := Lookup(rec.Tree, key)
		if !ok {
			r.Logger.Info("key not found", "source", rec.ID, "key", key)
			continue
		}
		writeMatch(&buf, key, rec.ID, v, r.Palette)
	}
	_, err := r.Stdout.Write(buf.Bytes())
	return err
}

// RenderKeyToFile appends the same text RenderKey would print, uncolored, to
// the file at path. A failed write is logged and the remaining records are
// still written.
func (r *Renderer) RenderKeyToFile(key, path string) error {
	if r.Store.Len() == 0 {
		r.Logger.Info("no data loaded")
		return nil
	}

	plain := PlainPalette()
	for _, rec := range r.Store.All() {
		v, ok := Lookup(rec.Tree, key)
		if !ok {
			r.Logger.Info("key not found", "source", rec.ID, "key", key)
			continue
		}

		var buf bytes.Buffer
		writeMatch(&buf, key, rec.ID, v, plain)
		if err := r.Files.Append(path, buf.Bytes()); err != nil {
			r.Logger.Error("write failed", "source", rec.ID, "path", path, "err", ErrorMessage(err))
			continue
		}
		r.Logger.Debug("wrote key", "source", rec.ID, "key", key, "path", path)
	}
	return nil
}

// RenderKeys prints each record's key index as a comma-separated list.
func (r *Renderer) RenderKeys() error {
	if r.Store.Len() == 0 {
		r.Logger.Info("no keys loaded")
		return nil
	}

	var buf bytes.Buffer
	for _, rec := range r.Store.All() {
		buf.WriteString(r.Palette.Header("Keys from "+rec.ID+":"))
		buf.WriteString(" " + strings.Join(r.Store.Keys(rec.ID), ", ") + "\n")
	}
	_, err := r.Stdout.Write(buf.Bytes())
	return err
}

// writeMatch writes "key from id: value". Mapping values are expanded on the
// following lines with indentation restarting at two spaces.
func writeMatch(buf *bytes.Buffer, key, id string, v Value, p Palette) {
	label := p.Key(key) + " from " + id + ":"
	if m, ok := v.(*Mapping); ok {
		buf.WriteString(label + "\n")
		writeTree(buf, m, 2, p)
		return
	}
	buf.WriteString(label + " " + Inline(v) + "\n")
}

// writeTree writes v depth-first, one key per line.
func writeTree(buf *bytes.Buffer, v Value, indent int, p Palette) {
	switch v := v.(type) {
	case *Mapping:
		for _, k := range v.keys {
			writeEntry(buf, k, v.values[k], indent, p)
		}
	case Sequence:
		for i, elem := range v {
			writeEntry(buf, "["+strconv.Itoa(i)+"]", elem, indent, p)
		}
	case Scalar:
		fmt.Fprintf(buf, "%s%s\n", strings.Repeat(" ", indent), v.Text)
	}
}

func writeEntry(buf *bytes.Buffer, key string, v Value, indent int, p Palette) {
	pad := strings.Repeat(" ", indent)
	if m, ok := v.(*Mapping); ok {
		buf.WriteString(pad + p.Key(key) + ":\n")
		writeTree(buf, m, indent+2, p)
		return
	}
	buf.WriteString(pad + p.Key(key) + ": " + Inline(v) + "\n")
}
