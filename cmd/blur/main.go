// Command blur smooths an image with an imaging library's 3x3 Gaussian blur.
//
// Usage:
//
//	blur [flags] [input [output]]
//
// Paths default to input.jpg and output.jpg in the working directory.
package main

import (
	"os"

	"github.com/rklaeser/go-blur3x3/pkg/cli"
)

func main() {
	os.Exit(cli.Main(cli.LibraryVariant))
}
