package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/nepridumalnik/lazyjson/alloc"
	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/native"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

// docFunc writes the output for the i'th input document to w.
type docFunc func(w io.Writer, i int, doc *value.Value) error

func eachDoc(cfg *MainConfig, cc *cli.Context, args []string, fmat format.Format, fn docFunc) error {
	if len(args) == 0 {
		return docsReader(cfg, cc.Out, cc.In, fmat, fn)
	}
	return docsFiles(cfg, cc.Out, cc.In, args, fmat, fn)
}

func docsFiles(cfg *MainConfig, w io.Writer, in io.Reader, files []string, fmat format.Format, fn docFunc) error {
	for i, file := range files {
		if err := docsFile(cfg, w, in, file, fmat, fn); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return fmt.Errorf("error writing separator after %s: %w", file, err)
			}
		}
	}
	return nil
}

func docsFile(cfg *MainConfig, w io.Writer, in io.Reader, file string, fmat format.Format, fn docFunc) error {
	r := in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := docsReader(cfg, w, r, fmat, fn); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func docsReader(cfg *MainConfig, w io.Writer, r io.Reader, fmat format.Format, fn docFunc) error {
	docs, err := readDocs(r, fmat)
	if err != nil {
		return err
	}
	n := len(docs)
	for i, doc := range docs {
		if err := cfg.runDoc(fn, w, i, doc); err != nil {
			return fmt.Errorf("error processing document %d: %w", i, err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

func (cfg *MainConfig) runDoc(fn docFunc, w io.Writer, i int, doc *value.Value) error {
	if !cfg.Stats {
		return fn(w, i, doc)
	}
	var err error
	st := alloc.Measure(func() { err = fn(w, i, doc) })
	theLog.Info("document", "index", i, "kind", doc.Kind(), "mallocs", st.Mallocs, "frees", st.Frees, "bytes", st.TotalAlloc)
	return err
}

// readDocs decodes the documents of r, separated by lines holding "---".
// A leading "---" line is allowed, CRLF line endings are accepted and blank
// documents are skipped.
func readDocs(r io.Reader, fmat format.Format) ([]*value.Value, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	in = bytes.ReplaceAll(in, []byte("\r\n"), []byte("\n"))
	in = bytes.TrimPrefix(in, docSep[1:])
	var res []*value.Value
	for i, d := range bytes.Split(in, docSep) {
		if len(bytes.TrimSpace(d)) == 0 {
			continue
		}
		doc, err := native.Decode(d, fmat)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// readDocFile reads the single document in path, "-" being in.
func readDocFile(in io.Reader, path string, fmat format.Format) (*value.Value, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	docs, err := readDocs(r, fmat)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%q: expected 1 document, got %d", path, len(docs))
	}
	return docs[0], nil
}
