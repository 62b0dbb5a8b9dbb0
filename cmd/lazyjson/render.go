package main

import (
	"io"

	"github.com/nepridumalnik/lazyjson/debug"
	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, cfg.inFormat(), cfg.renderDoc)
}

func (cfg *MainConfig) renderDoc(w io.Writer, i int, doc *value.Value) error {
	if debug.Encode() {
		debug.Logf("encoding document %d (%s)\n", i, doc.Kind())
	}
	return encode.Encode(doc, w, cfg.encOpts(w)...)
}
