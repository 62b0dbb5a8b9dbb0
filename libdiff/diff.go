package libdiff

import (
	"fmt"
	"strconv"

	"github.com/nepridumalnik/lazyjson/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Changes returns the structural differences turning from into to, in
// document order. Equal documents yield no changes.
func Changes(from, to *value.Value) []Change {
	var res []Change
	diff(&res, "$", from, to)
	return res
}

func diff(res *[]Change, path string, from, to *value.Value) {
	if from.Kind() != to.Kind() {
		*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	switch from.Kind() {
	case value.ObjectKind:
		fo, _ := value.Ref[value.Object](from)
		tobj, _ := value.Ref[value.Object](to)
		diffObject(res, path, fo, tobj)
	case value.ArrayKind:
		fa, _ := value.Ref[value.Array](from)
		ta, _ := value.Ref[value.Array](to)
		diffArray(res, path, fa, ta)
	default:
		if !from.Equal(to) {
			*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		}
	}
}

// objects are diffed over their sorted key sequences, recursing on keys
// present in both.
func diffObject(res *[]Change, path string, from, to *value.Object) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeys(fieldMap, runeMap, from)
	toRunes := mapKeys(fieldMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			k := runeMap[r]
			kp := path + "." + k
			switch d.Type {
			case diffpatch.DiffDelete:
				fv, _ := from.Get(k)
				*res = append(*res, Change{Path: kp, Op: Delete, From: fv})
			case diffpatch.DiffInsert:
				tv, _ := to.Get(k)
				*res = append(*res, Change{Path: kp, Op: Insert, To: tv})
			case diffpatch.DiffEqual:
				fv, _ := from.Get(k)
				tv, _ := to.Get(k)
				diff(res, kp, fv, tv)
			}
		}
	}
}

// arrays are diffed over element summaries: leaves by kind and value,
// containers by kind alone so that matching containers are recursed into.
// A deletion directly followed by an insertion is reported as replacements
// at the same position.
func diffArray(res *[]Change, path string, from, to *value.Array) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	at := func(i int) string { return path + "[" + strconv.Itoa(i) + "]" }
	fi, ti := 0, 0
	var pending []*value.Value
	flush := func() {
		for _, fv := range pending {
			*res = append(*res, Change{Path: at(fi), Op: Delete, From: fv})
			fi++
		}
		pending = pending[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				fv, _ := from.At(fi + len(pending))
				pending = append(pending, fv)
			}
		case diffpatch.DiffInsert:
			for range n {
				tv, _ := to.At(ti)
				if len(pending) > 0 {
					diff(res, at(ti), pending[0], tv)
					pending = pending[1:]
					fi++
				} else {
					*res = append(*res, Change{Path: at(ti), Op: Insert, To: tv})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				fv, _ := from.At(fi)
				tv, _ := to.At(ti)
				diff(res, at(ti), fv, tv)
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapKeys(m map[string]rune, im map[rune]string, obj *value.Object) []rune {
	keys := obj.Keys()
	rs := make([]rune, len(keys))
	for i, k := range keys {
		rs[i] = runeFor(m, k)
		im[rs[i]] = k
	}
	return rs
}

func mapValues(m map[string]rune, arr *value.Array) []rune {
	rs := make([]rune, 0, arr.Len())
	for _, v := range arr.All() {
		rs = append(rs, runeFor(m, summary(v)))
	}
	return rs
}

func summary(v *value.Value) string {
	if v.Kind().IsLeaf() {
		return fmt.Sprintf("%s-%v", v.Kind(), v.Interface())
	}
	return v.Kind().String()
}

// runeFor assigns consecutive runes to distinct strings, skipping the
// surrogate range which does not survive conversion to string.
func runeFor(m map[string]rune, s string) rune {
	r, ok := m[s]
	if ok {
		return r
	}
	r = rune(len(m))
	if r >= 0xD800 {
		r += 0x800
	}
	m[s] = r
	return r
}
