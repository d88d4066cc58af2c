// Package trace provides functions to read environment variables for enabling
// trace targets in the ctrie library.
package trace

import (
	"os"
	"strconv"

	"github.com/go-git/go-ctrie/utils/trace"
)

// envToTarget maps what environment variables can be used
// to enable specific trace targets.
var envToTarget = map[string]trace.Target{
	"CTRIE_TRACE":         trace.General,
	"CTRIE_TRACE_STORAGE": trace.Storage,
	"CTRIE_TRACE_FORMAT":  trace.Format,
}

// ReadEnv reads the environment variables and sets the trace targets.
func ReadEnv() {
	var target trace.Target
	for k, v := range envToTarget {
		env := os.Getenv(k)
		if val, _ := strconv.ParseBool(env); val {
			target |= v
		}
	}
	trace.SetTarget(target)
}
