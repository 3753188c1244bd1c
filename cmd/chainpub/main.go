package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/chainpub/internal/handlers/cli"
)

func main() {
	if err := cli.Run(context.Background(), newRelay); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
