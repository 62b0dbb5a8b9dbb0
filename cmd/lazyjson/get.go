package main

import (
	"fmt"
	"io"

	"github.com/nepridumalnik/lazyjson/query"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	expression := args[0]
	if expression == "" {
		return fmt.Errorf("%w: invalid expression \"\"", cli.ErrUsage)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], cfg.inFormat(), cfg.getFunc(expression))
}

func (cfg *GetConfig) getFunc(expression string) docFunc {
	return func(w io.Writer, i int, doc *value.Value) error {
		res, err := query.Eval(doc, expression)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", expression, err)
		}
		return cfg.renderDoc(w, i, res)
	}
}
