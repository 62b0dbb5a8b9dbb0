// Package libdiff computes differences between documents.
//
// # Usage
//
//	// structural changes
//	for _, c := range libdiff.Changes(oldDoc, newDoc) {
//		fmt.Println(c)
//	}
//
//	// line oriented text diff
//	txt, err := libdiff.Text(oldDoc, newDoc)
//
// Both use github.com/sergi/go-diff to align sequences: object keys and
// array elements for Changes, flattened leaf lines for Text.
package libdiff
