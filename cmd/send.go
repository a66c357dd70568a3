package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hockyg/vmdstream/internal/env"
)

var readBack bool

func init() {
	flags := SendCmd.Flags()

	flags.BoolVarP(&readBack, "read", "r", false, "Read one line of output back from VMD")
}

var SendCmd = &cobra.Command{
	Use:   "send <command>...",
	Short: "Send a raw scripting command to VMD",
	Long: `Send a raw scripting command to VMD

The arguments are joined with spaces and sent verbatim as one line, so both
of these are equivalent:

	vmdstream send 'draw sphere {0 0 0} radius 1'
	vmdstream send draw sphere '{0 0 0}' radius 1

`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		log, err := env.MakeLogger()
		if err != nil {
			return err
		}

		conf, err := env.LoadConfig(ctx)
		if err != nil {
			return err
		}

		stream, err := dial(ctx, cmd, conf, log)
		if err != nil {
			return err
		}
		defer stream.Close()

		if err := stream.Send(strings.Join(args, " ")); err != nil {
			return err
		}

		if readBack {
			line, err := stream.ReadLine()
			if err != nil {
				return err
			}

			fmt.Println(line)
		}

		return nil
	},
}
