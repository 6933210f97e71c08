// minigrep prints the lines of a file that contain a query string.
//
// Usage:
//
//	minigrep <query> <file-path>
//	IGNORE_CASE=1 minigrep <query> <file-path>
package main

import (
	"os"

	"github.com/ccollicutt/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
