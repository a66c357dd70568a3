package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/bridge"
	"github.com/hockyg/vmdstream/internal/env"
)

var (
	// The host to serve HTTP requests on
	httpHost string

	// The port to serve HTTP requests on
	httpPort string
)

func init() {
	flags := BridgeCmd.Flags()

	flags.StringVar(&httpHost, "http-host", "0.0.0.0", "The host to serve HTTP requests on")
	flags.StringVar(&httpPort, "http-port", "7380", "The port to serve HTTP requests on")
}

var BridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Serve an HTTP bridge in front of a VMD instance",
	Long: `Serve an HTTP bridge in front of a VMD instance

Anything that can POST JSON can then drive VMD without speaking its wire
syntax:

	curl -d '{"kind": "sphere", "at": [0, 0, 0], "radius": 2}' localhost:7380/draw

`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
		defer signalStop()

		log, err := env.MakeLogger()
		if err != nil {
			return err
		}

		conf, err := env.LoadConfig(ctx)
		if err != nil {
			return err
		}

		stream, err := dial(ctx, cmd, conf, log.Named("client"))
		if err != nil {
			return err
		}
		defer stream.Close()

		server := bridge.New(bridge.Options{
			Host:      httpHost,
			Port:      httpPort,
			Stream:    stream,
			DebugHTTP: conf.DebugHTTP,
			Log:       log.Named("bridge"),
		})

		if err := server.Start(ctx); err != nil {
			return err
		}

		log.Info("Bridging",
			zap.String("vmd", stream.Addr()),
			zap.String("http", server.Addr()))

		// Listen for the interrupt signal.
		<-ctx.Done()

		// Restore default behavior on the interrupt signal and notify user of shutdown.
		signalStop()
		log.Info("Shutting down gracefully, press Ctrl+C again to force")

		if err := server.Close(); err != nil {
			log.Error("Bridge forced to shutdown", zap.Error(err))
		}

		log.Info("Exiting")
		return nil
	},
}
