// Package main is the entry point for the ifbound CLI.
package main

import "ifbound.dev/pkg/ifbound/cmd"

func main() {
	cmd.Execute()
}
