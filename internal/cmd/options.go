// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mia-platform/pagelog/internal/config"
	"github.com/mia-platform/pagelog/internal/console"
	"github.com/mia-platform/pagelog/internal/info"
	"github.com/mia-platform/pagelog/internal/logger"
	"github.com/mia-platform/pagelog/internal/page"
	"github.com/mia-platform/pagelog/internal/pagelog"
	"github.com/mia-platform/pagelog/internal/script"
	"github.com/mia-platform/pagelog/internal/server"
)

const loggerName = "pagelog:cmd"

// options configures a single command execution.
type options struct {
	configPath  string
	scriptPath  string
	printRegion bool

	in  io.Reader
	out io.Writer
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if o.scriptPath == "" {
		return errNoArguments
	}

	return nil
}

// setup loads the configuration and builds a page with a Logger writing to it.
func (o *options) setup(sink pagelog.Console) (*page.Document, *pagelog.Logger, error) {
	cfg, err := config.LoadWithFile(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	document := page.NewDocument(info.AppName)
	return document, cfg.NewLogger(document, sink), nil
}

// readScript returns the script name and source, reading from the input stream for "-".
func (o *options) readScript() (string, string, error) {
	if o.scriptPath == stdinScriptName {
		source, err := io.ReadAll(o.in)
		if err != nil {
			return "", "", fmt.Errorf("script from stdin: %w", err)
		}
		return "stdin", string(source), nil
	}

	source, err := os.ReadFile(filepath.Clean(o.scriptPath))
	if err != nil {
		return "", "", fmt.Errorf("script %q: %w", o.scriptPath, err)
	}
	return filepath.Base(o.scriptPath), string(source), nil
}

// executeScript runs the script and prints the resulting page.
func (o *options) executeScript(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	name, source, err := o.readScript()
	if err != nil {
		return err
	}

	sink := console.Multi(console.NewWriterConsole(o.out), console.NewLoggerConsole(logger.FromContext(ctx)))
	document, pageLog, err := o.setup(sink)
	if err != nil {
		return err
	}

	host, err := script.NewHost(document, sink, pageLog)
	if err != nil {
		return err
	}

	if err := host.Run(ctx, name, source); err != nil {
		return err
	}
	log.Debug("script executed", "name", name, "elements", len(document.Elements()))

	return o.printPage(document, pageLog.TargetElementID())
}

// executeDemo runs the demonstration sequence on a bootstrapped display element.
func (o *options) executeDemo(_ context.Context) error {
	document, pageLog, err := o.setup(console.NewWriterConsole(o.out))
	if err != nil {
		return err
	}

	if _, found := document.Element(pageLog.TargetElementID()); !found {
		pageLog.BootstrapDefaultDisplayElement()
	}

	pageLog.SelfTest()

	o.printRegion = true
	return o.printPage(document, pageLog.TargetElementID())
}

// executeServe serves the page until ctx is cancelled or the process is interrupted.
func (o *options) executeServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.FromContext(ctx).WithName(loggerName)
	document, pageLog, err := o.setup(console.NewLoggerConsole(logger.FromContext(ctx)))
	if err != nil {
		return err
	}

	if _, found := document.Element(pageLog.TargetElementID()); !found {
		pageLog.BootstrapDefaultDisplayElement()
	}

	srv, err := server.NewServer(ctx, document, pageLog)
	if err != nil {
		return err
	}

	log.Info("starting preview server", "host", srv.HTTPHost, "port", srv.HTTPPort, "element", pageLog.TargetElementID())
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Start()
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error("preview server stopped", "error", err.Error())
		}
		return err
	case <-ctx.Done():
	}

	log.Info("stopping preview server")
	return srv.Stop()
}

// printPage writes the whole page, or only the element id when printRegion is set.
func (o *options) printPage(document *page.Document, id string) error {
	if !o.printRegion {
		return document.Render(o.out)
	}

	element, found := document.Element(id)
	if !found {
		return fmt.Errorf("%w: %q", pagelog.ErrDisplayElementNotFound, id)
	}

	_, err := fmt.Fprint(o.out, element.Value())
	return err
}
