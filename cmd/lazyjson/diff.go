package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nepridumalnik/lazyjson/libdiff"
	"github.com/nepridumalnik/lazyjson/patch"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Merge {
		return fmt.Errorf("%w: -t and -m are exclusive", cli.ErrUsage)
	}
	a, err := readDocFile(cc.In, args[0], cfg.inFormat())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := readDocFile(cc.In, args[1], cfg.inFormat())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the differences between a and b to w and reports whether
// there were any.
func diffDocs(cfg *DiffConfig, w io.Writer, a, b *value.Value) (bool, error) {
	switch {
	case cfg.Merge:
		if a.Equal(b) {
			return false, nil
		}
		mp, err := patch.MergeDiff(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", mp)
		return true, err
	case cfg.Text:
		txt, err := libdiff.Text(a, b)
		if err != nil {
			return false, err
		}
		if txt == "" {
			return false, nil
		}
		return true, writeDiffLines(w, strings.Split(strings.TrimSuffix(txt, "\n"), "\n"), cfg.colorize(w))
	}
	changes := libdiff.Changes(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = c.String()
	}
	return true, writeDiffLines(w, lines, cfg.colorize(w))
}

func writeDiffLines(w io.Writer, lines []string, colored bool) error {
	for _, line := range lines {
		if colored {
			line = diffColor(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func diffColor(line string) string {
	if line == "" {
		return line
	}
	var c *color.Color
	switch line[0] {
	case '+':
		c = color.New(color.FgGreen)
	case '-':
		c = color.New(color.FgRed)
	case '~':
		c = color.New(color.FgYellow)
	default:
		return line
	}
	c.EnableColor()
	return c.Sprint(line)
}
