package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware пишет строку на каждый запрос: адрес, метод, путь,
// статус и время обработки. Ошибки хендлеров тоже попадают в лог.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		if err != nil {
			logger.Printf("%s %s %s -> %d (%v) error: %v",
				c.IP(), c.Method(), c.Path(),
				c.Response().StatusCode(), time.Since(start), err)
			return err
		}

		logger.Printf("%s %s %s -> %d (%v)",
			c.IP(), c.Method(), c.Path(),
			c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
