// yamlq - YAML path query tool
//
// Usage:
//
//	yamlq <document> <query-path>
//
// Reads the YAML document and prints the value addressed by the query path.
// Paths use dot and bracket notation: "title", "items[1]", "servers[0].host".
// The empty path and "." address the whole document. A path that resolves to
// nothing prints an empty line and exits 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmage/yamlq"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Error: expected exactly two arguments")
		printUsage(stderr)

		return 1
	}

	app := yamlq.NewApp(
		yamlq.WithDocument(args[0]),
		yamlq.WithQuery(args[1]),
		yamlq.WithOutput(stdout),
		yamlq.WithLogLevel("error"),
	)

	if err := app.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `yamlq %s - extract values from YAML documents

Usage:
  yamlq <document> <query-path>

Query paths use dot and bracket notation:
  yamlq config.yaml title            top-level key
  yamlq config.yaml items[1]         second element of a list
  yamlq config.yaml servers[0].host  key inside an indexed element
  yamlq config.yaml .                whole document

A path that resolves to nothing prints an empty line and exits 0.
`, yamlq.Version)
}
