// Command kasane prints the layered configuration of the berkide editor.
//
// Usage:
//
//	kasane [flags] <command> [arguments]
//
// Commands:
//
//	get         Print the value at a dotted path
//	dump        Print the merged configuration
//	normalize   Strip comments from a JSONC document
//	layers      List the applied configuration layers
//	origin      Show which layer set the value at a dotted path
//	server      Print the effective server and inspector settings
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/yacchi/kasane/internal/cmd"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
