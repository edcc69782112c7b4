// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/pagelog/internal/logger"
	"github.com/mia-platform/pagelog/internal/page"
	"github.com/mia-platform/pagelog/internal/pagelog"
)

const (
	loggerName = "pagelog:server"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Server serves a page document and logs the messages it receives through a pagelog Logger.
type Server struct {
	Config

	app *fiber.App

	document *page.Document
	// lock serializes the access to log, which is not safe for concurrent use.
	lock sync.Mutex
	log  *pagelog.Logger
}

// NewServer configures the fiber application from the environment. The application logger is
// read from ctx.
func NewServer(ctx context.Context, document *page.Document, log *pagelog.Logger) (*Server, error) {
	cfg, err := LoadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true,
	})
	app.Use(logger.RequestMiddlewareLogger(logger.FromContext(ctx), []string{"/-/"}))

	s := &Server{
		Config:   *cfg,
		app:      app,
		document: document,
		log:      log,
	}
	s.routes()

	return s, nil
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	if err := s.app.Listen(fmt.Sprintf("%s:%d", s.HTTPHost, s.HTTPPort)); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

func (s *Server) StartAsync(ctx context.Context) {
	log := logger.FromContext(ctx).WithName(loggerName)
	go func() {
		if err := s.Start(); err != nil {
			log.Error(err.Error())
		}
	}()
}
