// Package main provides the entry point for kkrtestctl.
package main

import (
	"github.com/kkr-labs/kkrtestctl/cmd"
)

func main() {
	cmd.Execute()
}
