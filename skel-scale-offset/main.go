// Command skel-scale-offset applies a scale and an offset to the points of a
// skeleton file and writes them to <filepath>.scaled.obj.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"

	"skelobj/pkg/cli"
	"skelobj/pkg/convert"
	"skelobj/pkg/skel"
)

var cfg struct {
	adjacency string
	strictInt bool

	transform skel.Transform
	mode      skel.Adjacency
}

var cmd = &cobra.Command{
	Use:   "skel-scale-offset <filepath> <scale> <offset_x> <offset_y> <offset_z>",
	Short: "Apply scale and offset to input file",
	Long: `Every point is written as the vertex point/scale - offset.
Lines join points whose coordinates differ by at most 1 on every axis. With
--adjacency=raw (the default) the test uses the input coordinates, with
--adjacency=scaled it uses the scaled ones.`,
	Args:          parseArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cmd.SilenceUsage = true
		policy := skel.Truncate
		if cfg.strictInt {
			policy = skel.Integer
		}
		res, err := convert.ScaleOffset(convert.ScaleOptions{
			Input:     args[0],
			Transform: cfg.transform,
			Adjacency: cfg.mode,
			Policy:    policy,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ScaleOffset %s => %s (%d vertices, %d lines)\n",
			res.Input, res.Output, res.Vertices, res.Lines)
		return
	},
}

// parseArgs checks every numeric argument before any file is touched.
func parseArgs(cmd *cobra.Command, args []string) (err error) {
	if err = cobra.ExactArgs(5)(cmd, args); err != nil {
		return
	}
	var vs [4]float64
	for i, a := range args[1:] {
		vs[i], err = strconv.ParseFloat(a, 64)
		if err != nil {
			return errors.Errorf("invalid float value: %q", a)
		}
	}
	cfg.transform = skel.Transform{
		Scale:  vs[0],
		Offset: model3d.Coord3D{X: vs[1], Y: vs[2], Z: vs[3]},
	}
	if err = cfg.transform.Validate(); err != nil {
		return
	}
	cfg.mode, err = skel.ParseAdjacency(cfg.adjacency)
	return
}

func init() {
	cmd.PersistentFlags().StringVarP(&cfg.adjacency, "adjacency", "a", string(skel.AdjacencyRaw), "coordinates used for the neighbour test: raw or scaled")
	cmd.PersistentFlags().BoolVar(&cfg.strictInt, "int", false, "require integer coordinates")
}

func main() {
	cmd.SetArgs(cli.NumericArgs(cmd.PersistentFlags(), os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		essentials.Die(err)
	}
}
