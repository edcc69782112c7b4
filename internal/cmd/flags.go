// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to a YAML file overriding the configuration read from the environment"

	printRegionFlagName  = "print-region"
	printRegionFlagUsage = "If set, prints only the content of the display element instead of the whole page"
	defaultPrintRegion   = false

	stdinScriptName = "-"
)

// commonFlags collects the CLI options shared by every command.
type commonFlags struct {
	configPath string
}

// addFlags registers the CLI flags on cmd.
func (f *commonFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
}

// toOptions builds an options instance writing to the command streams.
func (f *commonFlags) toOptions(cmd *cobra.Command) *options {
	return &options{
		configPath: f.configPath,
		in:         cmd.InOrStdin(),
		out:        cmd.OutOrStdout(),
	}
}

// runFlags collects the CLI options of the run command.
type runFlags struct {
	commonFlags

	printRegion bool
}

// addFlags registers the CLI flags on cmd.
func (f *runFlags) addFlags(cmd *cobra.Command) {
	f.commonFlags.addFlags(cmd)
	cmd.Flags().BoolVar(&f.printRegion, printRegionFlagName, defaultPrintRegion, printRegionFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
func (f *runFlags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	if len(args) > 1 {
		return nil, errTooManyArguments
	}

	opts := f.commonFlags.toOptions(cmd)
	opts.printRegion = f.printRegion
	if len(args) > 0 {
		opts.scriptPath = args[0]
	}

	return opts, nil
}
