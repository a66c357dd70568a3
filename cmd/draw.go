package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/internal/env"
	"github.com/hockyg/vmdstream/scene"
	"github.com/hockyg/vmdstream/xyz"
)

var (
	// Frame to draw, -1 plays every frame in sequence
	frameIndex int

	// Default sphere radius
	drawRadius float64

	// Delay between trajectory frames
	frameDelay time.Duration

	// Colormap for the color scale: jet, gray or none
	colormapName string
)

func init() {
	flags := DrawCmd.Flags()

	flags.IntVarP(&frameIndex, "frame", "f", -1, "The frame to draw, -1 plays the whole trajectory")
	flags.Float64Var(&drawRadius, "radius", 0.5, "The default sphere radius")
	flags.DurationVar(&frameDelay, "delay", 500*time.Millisecond, "The delay between trajectory frames")
	flags.StringVar(&colormapName, "colormap", "none", "Color scale to install first: jet, gray or none")
}

var DrawCmd = &cobra.Command{
	Use:   "draw <trajectory.xyz>",
	Short: "Render an xyz trajectory in VMD",
	Long: `Render an xyz trajectory in VMD

Reads a simple xyz trajectory (count header, 'id type x y z' rows, box row)
and draws each frame as spheres colored by atom type.

`,
	Args: cobra.ExactArgs(1),
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

		traj, err := xyz.ReadFile(args[0])
		if err != nil {
			return err
		}

		if len(traj.Frames) == 0 {
			return fmt.Errorf("%s contains no frames", args[0])
		}

		if frameIndex >= len(traj.Frames) {
			return fmt.Errorf("frame %d out of range, %s has %d frames",
				frameIndex, args[0], len(traj.Frames))
		}

		stream, err := dial(ctx, cmd, conf, log)
		if err != nil {
			return err
		}
		defer stream.Close()

		sc := scene.New(stream, log.Named("scene"))

		switch colormapName {
		case "jet":
			if err := sc.SetColorScale(scene.Jet); err != nil {
				return err
			}

		case "gray":
			if err := sc.SetColorScale(scene.Grayscale); err != nil {
				return err
			}
		}

		frames := traj.Frames
		if frameIndex >= 0 {
			frames = frames[frameIndex : frameIndex+1]
		}

		log.Info("Drawing trajectory",
			zap.String("file", args[0]),
			zap.Int("frames", len(frames)),
			zap.Strings("atomTypes", traj.TypeLabels))

		for i, frame := range frames {
			atoms := scene.Atoms{
				Coords: frame.Coords,
				Types:  frame.Types,
			}

			opts := scene.Options{
				DefaultRadius: drawRadius,

				// Keep the camera still after the first frame.
				KeepView: i > 0,
			}

			if err := sc.DrawAtomic(atoms, opts); err != nil {
				return err
			}

			if i+1 < len(frames) {
				select {
				case <-ctx.Done():
					return ctx.Err()

				case <-time.After(frameDelay):
				}
			}
		}

		return nil
	},
}
