// Command blur-parallel smooths an image with the manual 3x3 kernel, splitting
// the interior pixels across a pool of worker goroutines.
package main

import (
	"os"

	"github.com/rklaeser/go-blur3x3/pkg/cli"
)

func main() {
	os.Exit(cli.Main(cli.ParallelVariant))
}
