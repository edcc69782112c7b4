// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	runCmdUsage = "run SCRIPT"
	runCmdShort = "run a page script against an in-memory page"
	runCmdLong  = `Run a JavaScript page script against an in-memory page.
	The script can use the console and document globals and the Log facade, or the
	ready-made pagelog instance configured from the environment and the configuration file.
	Use "-" to read the script from the standard input.

	When the script ends the page is printed as HTML, or only the content of the
	configured display element when --print-region is set.`

	runCmdExample = `# Run a script and print the resulting page
	pagelog run script.js

	# Run a script with a bootstrapped display element and print only its content
	PAGELOG_BOOTSTRAP=true pagelog run script.js --print-region`

	demoCmdUsage = "demo"
	demoCmdShort = "log a demonstration sequence to the console and to a display element"
	demoCmdLong  = `Log a fixed demonstration sequence going through every sink combination
	and every severity. Console messages are printed as they are emitted, followed by the
	final content of the display element.`

	serveCmdUsage = "serve"
	serveCmdShort = "serve a live preview of the page over HTTP"
	serveCmdLong  = `Serve a live preview of the page over HTTP.
	Messages sent to POST /logs are routed through the facade, the page is rendered
	on / and the content of a single element is available on /elements/{id}.
	The server listens on HTTP_HOST and HTTP_PORT.`
)

// RunCmd returns the Cobra command running a page script.
func RunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:     runCmdUsage,
		Short:   heredoc.Doc(runCmdShort),
		Long:    heredoc.Doc(runCmdLong),
		Example: heredoc.Doc(runCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.executeScript(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// DemoCmd returns the Cobra command logging the demonstration sequence.
func DemoCmd() *cobra.Command {
	flags := &commonFlags{}
	cmd := &cobra.Command{
		Use:   demoCmdUsage,
		Short: heredoc.Doc(demoCmdShort),
		Long:  heredoc.Doc(demoCmdLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.toOptions(cmd)
			if err := opts.executeDemo(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// ServeCmd returns the Cobra command starting the preview server.
func ServeCmd() *cobra.Command {
	flags := &commonFlags{}
	cmd := &cobra.Command{
		Use:   serveCmdUsage,
		Short: heredoc.Doc(serveCmdShort),
		Long:  heredoc.Doc(serveCmdLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.toOptions(cmd)
			if err := opts.executeServe(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
