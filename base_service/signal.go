package base_service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CreateSignalCancelContext returns a context canceled on SIGINT or SIGTERM.
func CreateSignalCancelContext() context.Context {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-signalChan
		logger := GetLogger("signal")
		logger.Info().Msg("Received interrupt signal. Canceling request...")
		cancel()
	}()
	return ctx
}
