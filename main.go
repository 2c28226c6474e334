package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"edubrief/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "edubrief-backend: %v\n", err)
		os.Exit(1)
	}
}
