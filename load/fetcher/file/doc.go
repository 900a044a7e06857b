// Package file provides a file-based implementation of the load.Source
// interface.
//
// The source reads the whole document in one Fetch call; the underlying file
// handle is closed before Fetch returns on every path, including failures.
//
// # Example
//
//	src := file.NewSource("config.yaml")
//	data, err := src.Fetch()
package file
