package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// requestObserver es el contrato mínimo que necesita el middleware.
// Lo implementa *metrics.Metrics; el uso de interfaz evita acoplar el router a Prometheus.
type requestObserver interface {
	ObserveRequest(method, route string, status int)
}

// RequestMetrics cuenta cada petición por método, ruta registrada y status.
// Se usa el patrón de la ruta (/api/customers/:id) para no crear una serie por id.
func RequestMetrics(obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		obs.ObserveRequest(c.Method(), c.Route().Path, status)
		return err
	}
}
