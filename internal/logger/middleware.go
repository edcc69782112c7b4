// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	// RequestIDHeaderName is read to correlate request logs, and generated when missing.
	RequestIDHeaderName = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// httpEntry is the http section of a request log line.
type httpEntry struct {
	Request  *requestEntry  `json:"request,omitempty"`
	Response *responseEntry `json:"response,omitempty"`
}

type requestEntry struct {
	Method    string `json:"method,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

type responseEntry struct {
	StatusCode int `json:"statusCode,omitempty"`
	BodyBytes  int `json:"bodyBytes"`
}

type hostEntry struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

// requestID returns the id carried by the request header or a new random one.
func requestID(c *fiber.Ctx) string {
	if id := c.Get(RequestIDHeaderName); id != "" {
		return id
	}
	return uuid.NewString()
}

func hostOf(c *fiber.Ctx) hostEntry {
	return hostEntry{
		ForwardedHost: c.Get(forwardedHostHeaderKey),
		Hostname:      removePort(string(c.Request().Host())),
		IP:            c.Get(forwardedForHeaderKey),
	}
}

func statusAndSize(c *fiber.Ctx, handlerErr error) (int, int) {
	if fiberErr, ok := handlerErr.(*fiber.Error); ok {
		return fiberErr.Code, len(fiberErr.Error())
	}

	size := len(c.Response().Body())
	if content := c.GetRespHeader(fiber.HeaderContentLength); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			size = length
		}
	}
	return c.Response().StatusCode(), size
}

// RequestMiddlewareLogger is a fiber middleware logging every request twice: a TRACE line
// when it arrives and an INFO line with status and latency when it completes. Paths starting
// with one of excludedPrefix are not logged. The request logger is stored in the user context.
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		requestLogger := logger.WithName("request").WithName(requestID(c))
		c.SetUserContext(WithContext(c.UserContext(), requestLogger))

		request := &requestEntry{
			Method:    c.Method(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		}

		requestLogger.Trace(IncomingRequestMessage,
			"http", httpEntry{Request: request},
			"url", path,
			"host", hostOf(c),
		)

		err := c.Next()

		statusCode, bodyBytes := statusAndSize(c, err)
		requestLogger.Info(RequestCompletedMessage,
			"http", httpEntry{
				Request:  request,
				Response: &responseEntry{StatusCode: statusCode, BodyBytes: bodyBytes},
			},
			"url", path,
			"host", hostOf(c),
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}
