package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestNumericArgs(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("adjacency", "a", "raw", "")
	fs.Bool("int", false, "")

	for _, tc := range []struct {
		in, out []string
	}{
		{
			[]string{"p.txt", "2", "-1.5", "0", "1e-3"},
			[]string{"--", "p.txt", "2", "-1.5", "0", "1e-3"},
		},
		{
			[]string{"--adjacency", "scaled", "p.txt", "-2", "--int", "-3", "-4", "5"},
			[]string{"--adjacency", "scaled", "--int", "--", "p.txt", "-2", "-3", "-4", "5"},
		},
		{
			[]string{"-a", "scaled", "p.txt", "--adjacency=raw", "--", "-x"},
			[]string{"-a", "scaled", "--adjacency=raw", "--", "p.txt", "-x"},
		},
		{
			[]string{"--help"},
			[]string{"--help"},
		},
	} {
		actual := NumericArgs(fs, tc.in)
		if !reflect.DeepEqual(actual, tc.out) {
			t.Errorf("%v: expected %v, got %v", tc.in, tc.out, actual)
		}
	}

	if err := fs.Parse(NumericArgs(fs, []string{"p.txt", "-1", "--adjacency", "scaled"})); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fs.Args(), []string{"p.txt", "-1"}) {
		t.Errorf("unexpected positional args %v", fs.Args())
	}
	if v, _ := fs.GetString("adjacency"); v != "scaled" {
		t.Errorf("unexpected flag value %q", v)
	}
}
