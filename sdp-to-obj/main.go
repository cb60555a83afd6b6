// Command sdp-to-obj converts a skeleton point file into an OBJ file with a
// line between every pair of neighbouring points.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"

	"skelobj/pkg/convert"
	"skelobj/pkg/skel"
)

var cfg struct {
	strictInt bool
}

var cmd = &cobra.Command{
	Use:   "sdp-to-obj <fileInput> <fileOutput>",
	Short: "Take skeleton file in input and generate obj in output",
	Long: `Each input line holds the x, y and z coordinates of one point and is written
as a vertex. Points whose truncated coordinates differ by at most 1 on every
axis are joined by a line. ".obj" is appended to fileOutput when missing.
.pcd and .bin inputs are read as point clouds. When fileInput is a directory,
every point file inside it is converted into the fileOutput directory.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cmd.SilenceUsage = true
		policy := skel.Truncate
		if cfg.strictInt {
			policy = skel.Integer
		}
		if fi, err := os.Stat(args[0]); err == nil && fi.IsDir() {
			results, err := convert.SDPDir(args[0], args[1], policy)
			printResults(cmd.OutOrStdout(), results)
			return err
		}
		res, err := convert.SDPToOBJ(convert.SDPOptions{
			Input:  args[0],
			Output: args[1],
			Policy: policy,
		})
		if err != nil {
			return err
		}
		printResults(cmd.OutOrStdout(), []*convert.Result{res})
		return
	},
}

func printResults(w io.Writer, results []*convert.Result) {
	for _, res := range results {
		fmt.Fprintf(w, "SDPToOBJ %s => %s (%d vertices, %d lines)\n",
			res.Input, res.Output, res.Vertices, res.Lines)
	}
}

func init() {
	cmd.PersistentFlags().BoolVar(&cfg.strictInt, "int", false, "require integer coordinates")
}

func main() {
	if err := cmd.Execute(); err != nil {
		essentials.Die(err)
	}
}
