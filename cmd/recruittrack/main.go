// Package main is the entry point for the RecruitTrack command-line tool.
// Its sole responsibility is wiring dependencies together and starting the
// shell or running a single command. No business logic belongs here.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// SIGINT inside the shell is handled by readline; the context covers
	// exec and migrate, and a SIGTERM sent to the shell.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
