// Command gchart reads a YAML chart definition and prints the chart URL.
package main

import (
	"context"
	"os"

	"github.com/sethvargo/go-envconfig"
)

func main() {
	ctx := context.Background()
	cmd := newRootCmd(envconfig.OsLookuper())
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
