package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode  bool
	Convert bool
	Patch   bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("LAZYJSON_DEBUG_ENCODE")
	d.Convert = boolEnv("LAZYJSON_DEBUG_CONVERT")
	d.Patch = boolEnv("LAZYJSON_DEBUG_PATCH")
	d.Query = boolEnv("LAZYJSON_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
