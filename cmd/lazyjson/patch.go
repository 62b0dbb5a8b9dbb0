package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nepridumalnik/lazyjson/debug"
	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/native"
	"github.com/nepridumalnik/lazyjson/patch"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	fn, err := cfg.patchFunc(d)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], cfg.inFormat(), fn)
}

// patchFunc returns a docFunc applying the patch in d. Merge patches and
// json patches given as json are used as is, since they may contain nulls
// which a document cannot hold. Otherwise the patch is decoded in the input
// format.
func (cfg *PatchConfig) patchFunc(d []byte) (docFunc, error) {
	var apply func(doc *value.Value) (*value.Value, error)
	switch {
	case cfg.Merge:
		apply = func(doc *value.Value) (*value.Value, error) {
			return patch.Merge(doc, d)
		}
	case cfg.inFormat() == format.JSONFormat:
		apply = func(doc *value.Value) (*value.Value, error) {
			return patch.Apply(doc, d)
		}
	default:
		ops, err := native.Decode(d, cfg.inFormat())
		if err != nil {
			return nil, err
		}
		apply = func(doc *value.Value) (*value.Value, error) {
			return patch.ApplyValue(doc, ops)
		}
	}
	return func(w io.Writer, i int, doc *value.Value) error {
		res, err := apply(doc)
		if err != nil {
			return err
		}
		if debug.Patch() {
			debug.Logf("patched document %d: %v\n", i, debug.Value{Value: res})
		}
		return cfg.renderDoc(w, i, res)
	}, nil
}
