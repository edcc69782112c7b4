// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pagelog/internal/config"
	"github.com/mia-platform/pagelog/internal/logger"
	"github.com/mia-platform/pagelog/internal/pagelog"
	"github.com/mia-platform/pagelog/internal/script"
	"github.com/mia-platform/pagelog/internal/server"
)

func TestCmds(t *testing.T) {
	testCases := map[string]struct {
		cmd                  *cobra.Command
		args                 []string
		stdin                string
		env                  map[string]string
		setup                func(t *testing.T)
		expectedError        error
		expectedErrorMessage string
		expectedUsage        bool
		expectedOutput       []string
	}{
		"run command with no arguments returns no error and print usage": {
			cmd:           RunCmd(),
			args:          []string{},
			expectedUsage: true,
		},
		"run command with two scripts returns error and print usage": {
			cmd:                  RunCmd(),
			args:                 []string{"a.js", "b.js"},
			expectedUsage:        true,
			expectedError:        errTooManyArguments,
			expectedErrorMessage: errTooManyArguments.Error() + "\n",
		},
		"run command missing script": {
			cmd:                  RunCmd(),
			args:                 []string{filepath.Join("testdata", "missing.js")},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("script %q: open %s: %s\n", filepath.Join("testdata", "missing.js"), filepath.Join("testdata", "missing.js"), syscall.ENOENT),
		},
		"run command failing script": {
			cmd:           RunCmd(),
			args:          []string{filepath.Join("testdata", "failing.js")},
			expectedError: script.ErrScript,
		},
		"run command invalid configuration file": {
			cmd:           RunCmd(),
			args:          []string{filepath.Join("testdata", "script.js"), "--" + configFlagName, filepath.Join("testdata", "missing.yaml")},
			expectedError: syscall.ENOENT,
		},
		"run command prints the page": {
			cmd:  RunCmd(),
			args: []string{filepath.Join("testdata", "script.js")},
			expectedOutput: []string{
				"warn: hello from the console\n",
				`<textarea id="output" rows="5" cols="40"`,
				"[Info] hello from the page\n</textarea>",
			},
		},
		"run command prints the display element": {
			cmd:   RunCmd(),
			args:  []string{stdinScriptName, "--" + printRegionFlagName},
			stdin: `pagelog.log("from stdin", Log.LogTypes.Debug);`,
			env:   map[string]string{"PAGELOG_BOOTSTRAP": "true", "PAGELOG_CONSOLE_ENABLED": "false"},
			expectedOutput: []string{
				"[Debug] from stdin\n",
			},
		},
		"run command print region without display element": {
			cmd:           RunCmd(),
			args:          []string{stdinScriptName, "--" + printRegionFlagName},
			stdin:         `pagelog.log("nowhere");`,
			expectedError: pagelog.ErrDisplayElementNotFound,
		},
		"demo command with invalid environment": {
			cmd:           DemoCmd(),
			env:           map[string]string{"PAGELOG_CONSOLE_ENABLED": "maybe"},
			expectedError: config.ErrEnvVariablesNotValid,
		},
		"demo command prints console and display element": {
			cmd: DemoCmd(),
			expectedOutput: []string{
				"log: Generic message to console\n",
				"error: Error message to textarea and console\n",
				"[Log] Generic message to textarea\n",
				"[Warn] Warn message to textarea and console\n",
			},
		},
		"demo command uses configured display element": {
			cmd:  DemoCmd(),
			args: []string{"--" + configFlagName, filepath.Join("testdata", "bootstrap.yaml")},
			expectedOutput: []string{
				"[Debug] Debug message to textarea and console\n",
			},
		},
		"serve command with a port already in use": {
			cmd: ServeCmd(),
			setup: func(t *testing.T) {
				t.Helper()
				listener, err := net.Listen("tcp4", "127.0.0.1:0")
				require.NoError(t, err)
				t.Cleanup(func() { listener.Close() })

				t.Setenv("HTTP_HOST", "127.0.0.1")
				t.Setenv("HTTP_PORT", strconv.Itoa(listener.Addr().(*net.TCPAddr).Port))
			},
			expectedError:        server.ErrServerListen,
			expectedErrorMessage: server.ErrServerListen.Error(),
		},
		"serve command with invalid port": {
			cmd:           ServeCmd(),
			env:           map[string]string{"HTTP_PORT": "0"},
			expectedError: server.ErrEnvVariablesNotValid,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			for key, value := range test.env {
				t.Setenv(key, value)
			}
			if test.setup != nil {
				test.setup(t)
			}

			cmd := test.cmd
			cmd.SetArgs(test.args)
			cmd.SetIn(strings.NewReader(test.stdin))
			outBuffer := new(bytes.Buffer)
			errBuffer := new(bytes.Buffer)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)

			ctx := logger.WithContext(t.Context(), logger.NewLogger(new(bytes.Buffer)))
			err := cmd.ExecuteContext(ctx)
			if test.expectedError != nil {
				require.ErrorIs(t, err, test.expectedError)
			} else {
				require.NoError(t, err)
			}

			if test.expectedErrorMessage != "" {
				assert.True(t, strings.HasPrefix(errBuffer.String(), test.expectedErrorMessage), errBuffer.String())
			}

			usage := cmd.UsageString()
			if test.expectedUsage {
				assert.Contains(t, outBuffer.String()+errBuffer.String(), usage)
			} else {
				assert.NotContains(t, outBuffer.String()+errBuffer.String(), usage)
			}

			for _, expected := range test.expectedOutput {
				assert.Contains(t, outBuffer.String(), expected)
			}
		})
	}
}
