// Package emojiscan provides the command-line interface for the emojiscan
// tool. It configures subcommands (scan, ranges, baseline, config, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/emojiscan/emojiscan/cmd/emojiscan"
//	func main() { emojiscan.Execute() }
package emojiscan
