// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command frames demonstrates typed columns and frames:
//
//	frames demo            # build, join, and print the sample frames
//	frames demo -vv        # also log each join at debug level
//	frames format          # print the current rendering format as TOML
//	frames format my.yaml  # save it to a TOML or YAML file
//	frames demo --format my.toml
package main

import (
	"os"

	"cogentcore.org/frames/base/errors"
	"cogentcore.org/frames/base/iox/tomlx"
	"cogentcore.org/frames/base/logx"
	"cogentcore.org/frames/column"
	"github.com/spf13/cobra"
)

// config has the values of the persistent flags.
type config struct {
	// Format is a TOML or YAML file with the [column.Format] to render with.
	Format string

	// log level flags, see [logx.LevelFromFlags]
	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

func main() {
	logx.SetDefaultLogger()
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes given root command, logging any error,
// including those in the command line itself.
func run(root *cobra.Command) error {
	return errors.Log(root.Execute())
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "frames",
		Short:         "Typed columns and frames of in-memory tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Format, "format", "", "TOML or YAML file with the rendering format")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "very verbose output (debug level logging)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output (info level logging)")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Build, join, and print the sample frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(cmd.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "format [file]",
		Short: "Print the rendering format as TOML, or save it to a TOML or YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return column.DefaultFormat.Save(args[0])
			}
			return tomlx.Write(column.DefaultFormat, cmd.OutOrStdout())
		},
	})
	return root
}

// setup sets the log level and the default format from given config.
func setup(cfg *config) error {
	logx.SetLevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	if cfg.Format == "" {
		return nil
	}
	f, err := column.OpenFormat(cfg.Format)
	if err != nil {
		return err
	}
	column.DefaultFormat = *f
	return nil
}
