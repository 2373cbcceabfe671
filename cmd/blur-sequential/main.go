// Command blur-sequential applies the manual 3x3 kernel on a single
// goroutine. Its output matches blur-parallel bit for bit.
package main

import (
	"os"

	"github.com/rklaeser/go-blur3x3/pkg/cli"
)

func main() {
	os.Exit(cli.Main(cli.SequentialVariant))
}
