// Package main is the entry point for the etsy-bridge server and CLI.
package main

import (
	"github.com/donaldgifford/etsy-bridge/cmd/etsy-bridge/cmd"
)

func main() {
	cmd.Execute()
}
