package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/stackguard/internal/client/config"
	"github.com/dmitrijs2005/stackguard/internal/flagx"
)

func main() {
	cfg := config.LoadConfig()

	root := newRootCmd(cfg)
	root.SetArgs(flagx.StripArgs(os.Args[1:], config.FlagNames()))

	if err := root.ExecuteContext(context.Background()); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
