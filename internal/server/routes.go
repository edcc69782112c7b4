// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/pagelog/internal/info"
	"github.com/mia-platform/pagelog/internal/pagelog"
)

// logRequest is the body accepted by the log route.
type logRequest struct {
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (s *Server) routes() {
	status := func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{Status: "OK", Name: info.AppName, Version: info.Version})
	}
	s.app.Get("/-/healthz", status)
	s.app.Get("/-/ready", status)

	s.app.Get("/", s.renderPage)
	s.app.Get("/elements/:id", s.elementValue)
	s.app.Post("/logs", s.logMessage)
	s.app.Delete("/logs", s.clearLogs)
}

func (s *Server) renderPage(c *fiber.Ctx) error {
	builder := new(strings.Builder)
	if err := s.document.Render(builder); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(builder.String())
}

func (s *Server) elementValue(c *fiber.Ctx) error {
	element, found := s.document.Element(c.Params("id"))
	if !found {
		return fiber.NewError(http.StatusNotFound, "element not found")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(element.Value())
}

func (s *Server) logMessage(c *fiber.Ctx) error {
	var request logRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid log request")
	}

	s.lock.Lock()
	s.log.Log(request.Message, pagelog.SeverityFromString(request.Severity))
	s.lock.Unlock()

	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) clearLogs(c *fiber.Ctx) error {
	s.lock.Lock()
	s.log.ClearLogs()
	s.lock.Unlock()

	return c.SendStatus(http.StatusNoContent)
}
