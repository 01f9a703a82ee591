// Package main provides the entry point for the ptadiff CLI tool.
package main

import (
	"github.com/jfmartin/ptadiff/cmd/ptadiff/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
