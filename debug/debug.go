package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("YAMLMERGE_DEBUG_LOAD")
	d.Merge = boolEnv("YAMLMERGE_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Merge() bool {
	return d.Merge
}
