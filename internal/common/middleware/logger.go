package middleware

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger writes one line per request to w with its status, latency and body
// size. Health probes are not logged.
func Logger(w io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Stream:     w,
		Skip:       isProbe,
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | ${bytesReceived}B in, ${bytesSent}B out\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

func isProbe(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/health/")
}
