// Command obj-to-graph reads an OBJ skeleton and dumps every vertex with the
// vertices it is linked to as JSON.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"

	"skelobj/pkg/convert"
)

var cfg struct {
	out string
}

var cmd = &cobra.Command{
	Use:           "obj-to-graph <file.obj>",
	Short:         "Convert an OBJ skeleton into a JSON point graph",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cmd.SilenceUsage = true
		res, err := convert.OBJToGraph(convert.GraphOptions{Input: args[0], Output: cfg.out})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "OBJToGraph %s => %s (%d vertices, %d links)\n",
			res.Input, res.Output, res.Vertices, res.Lines)
		if res.Dangling > 0 {
			fmt.Fprintf(out, "skipped %d lines from undeclared vertices\n", res.Dangling)
		}
		if res.Vertices > 0 {
			fmt.Fprintf(out, "bounds: (%g, %g, %g) - (%g, %g, %g)\n",
				res.Min.X, res.Min.Y, res.Min.Z, res.Max.X, res.Max.Y, res.Max.Z)
		}
		if res.Start > 0 {
			fmt.Fprintf(out, "start: vertex %d\n", res.Start)
		}
		return
	},
}

func init() {
	cmd.PersistentFlags().StringVarP(&cfg.out, "out", "o", "", "output json file (default: input with .json extension)")
}

func main() {
	if err := cmd.Execute(); err != nil {
		essentials.Die(err)
	}
}
