// Package main is the entry point for the opaq CLI.
package main

import "opaq.dev/pkg/opaq/cmd"

func main() {
	cmd.Execute()
}
