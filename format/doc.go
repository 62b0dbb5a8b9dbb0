// Package format names the input encodings lazyjson can read documents from.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	doc, err := native.Decode(data, f)
package format
