// The qstack binary runs operation scripts against a queue-backed stack or a
// binary heap, printing one line per result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
