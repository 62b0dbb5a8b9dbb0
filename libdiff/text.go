package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines flattens v into one "path = leaf" line per leaf, in document order.
// Empty containers are leaves.
func Lines(v *value.Value) ([]string, error) {
	var res []string
	if err := lines(&res, "$", v); err != nil {
		return nil, err
	}
	return res, nil
}

func lines(res *[]string, path string, v *value.Value) error {
	switch x := v.Interface().(type) {
	case *value.Object:
		if !x.IsEmpty() {
			for k, e := range x.All() {
				if err := lines(res, path+"."+k, e); err != nil {
					return err
				}
			}
			return nil
		}
	case *value.Array:
		if !x.IsEmpty() {
			for i, e := range x.All() {
				if err := lines(res, path+"["+strconv.Itoa(i)+"]", e); err != nil {
					return err
				}
			}
			return nil
		}
	}
	s, err := encode.ToString(v)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	*res = append(*res, path+" = "+s)
	return nil
}

// Text returns a line diff of the flattened forms of from and to. Removed
// lines are prefixed with "-", added lines with "+". Unchanged lines are
// left out. Equal documents give "".
func Text(from, to *value.Value) (string, error) {
	fl, err := Lines(from)
	if err != nil {
		return "", err
	}
	tl, err := Lines(to)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(fl), joinLines(tl))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	buf := &strings.Builder{}
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String(), nil
}

func joinLines(ls []string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}
