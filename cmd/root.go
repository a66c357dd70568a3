package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/client"
	"github.com/hockyg/vmdstream/cmd/gen"
	"github.com/hockyg/vmdstream/internal/env"
)

var (
	// The host the target VMD instance is listening on
	host string

	// The port the target VMD instance is listening on
	port int
)

var rootCmd = &cobra.Command{
	Use:   "vmdstream",
	Short: "Send drawing commands to a running VMD instance",
	Long: `vmdstream talks to a VMD instance that has been started with a
remote-control listener (e.g. vmd -e remote_ctl.tcl) and sends it drawing
and scripting commands over TCP.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&host, "host", "a", client.DefaultHost, "The host VMD is listening on")
	flags.IntVarP(&port, "port", "p", client.DefaultPort, "The port VMD is listening on")

	rootCmd.AddCommand(SendCmd)
	rootCmd.AddCommand(DrawCmd)
	rootCmd.AddCommand(BridgeCmd)
	rootCmd.AddCommand(gen.RootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// dial opens the command channel, letting flags win over environment
// overrides from env.LoadConfig.
func dial(ctx context.Context, cmd *cobra.Command, conf *env.Config, log *zap.Logger) (*client.Stream, error) {
	cfg := client.Config{Host: host, Port: port}

	if !cmd.Flags().Changed("host") && conf.Host != "" {
		cfg.Host = conf.Host
	}
	if !cmd.Flags().Changed("port") && conf.Port != 0 {
		cfg.Port = conf.Port
	}

	return client.Dial(ctx, cfg, log)
}
