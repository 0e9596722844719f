package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Apply  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("TAGCONF_DEBUG_DECODE")
	d.Encode = boolEnv("TAGCONF_DEBUG_ENCODE")
	d.Apply = boolEnv("TAGCONF_DEBUG_APPLY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Apply() bool {
	return d.Apply
}
