package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Stats bool `cli:"name=stats desc='log allocation statistics for each document'"`
	Depth int  `cli:"name=depth desc='maximum nesting depth to encode, 0 for no limit'"`

	J bool `cli:"name=j aliases=json desc='read json input'"`
	Y bool `cli:"name=y aliases=yaml desc='read yaml input'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

// colorize reports whether output to w is colored: -color decides when
// given, otherwise color is used for terminals.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.MaxDepth(cfg.Depth),
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text  bool `cli:"name=t aliases=text desc='show a line diff of flattened documents'"`
	Merge bool `cli:"name=m aliases=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='patch is a json merge patch (rfc 7396)'"`

	Patch *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
