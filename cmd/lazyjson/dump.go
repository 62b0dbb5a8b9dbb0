package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, cfg.inFormat(), dumpDoc)
}

func dumpDoc(w io.Writer, _ int, doc *value.Value) error {
	d, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, format.IRFormat, cfg.renderDoc)
}
