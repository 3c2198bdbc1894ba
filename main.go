// Package main is the entry point for the finch-frontend binding extractor.
// It parses the C-linkage headers a binding generator emits and reconstructs
// the class-oriented binding surface target-language emitters consume.
package main

import "github.com/finch-gen/finch-frontend-api/cmd"

func main() {
	cmd.Execute()
}
