// Package metrics exposes request metrics in the Prometheus text format.
package metrics

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

// ServiceName labels every collected series.
const ServiceName = "modteam"

var (
	prom     *fiberprometheus.FiberPrometheus
	promOnce sync.Once
)

// Prometheus returns the process wide collector. The series are registered with
// the default registry, which accepts them only once.
func Prometheus() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(ServiceName)
	})
	return prom
}

// Install records every request passing through app and serves the collected
// series at path, guarded by handlers.
func Install(app *fiber.App, path string, handlers ...fiber.Handler) {
	p := Prometheus()
	p.RegisterAt(app, path, handlers...)
	app.Use(p.Middleware)
}
