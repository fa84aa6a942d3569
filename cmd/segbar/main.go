// Command segbar renders and hosts segmented progress bars.
//
//	segbar render -o bar.png --width 400 --height 40 --progress 2
//	segbar svg -o bar.svg --style rounded
//	segbar term
//	segbar tui --lang fr
//	segbar window
//
// Widget attributes come from flags, SEGBAR_* environment variables
// (SEGBAR_SEGMENT_COUNT=5) or a segbar.yaml config file, in that order of
// precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
