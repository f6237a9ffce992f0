// santa is the Santa.exe terminal: an HTTP/websocket server and a local TUI over the same
// conversation engine.
//
// Usage:
//
//	santa serve
//	santa terminal [--scenario=<key>]
//	santa catalog [--validate]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
