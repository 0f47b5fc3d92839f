package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"regexlab/internal/pkg/app"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(ctx); err != nil {
		log.Fatal(err)
	}
}
