package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/diginatu/nagome-presence/preview"
)

const (
	// AppName is the application name.
	AppName = "nagome-presence"
)

var (
	// Version is version info.
	Version = "0.1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cli := preview.NewCLI("", AppName)
	cli.Version = Version
	cli.Context = ctx

	rt := cli.RunCli(os.Args)
	stop()
	os.Exit(rt)
}
