// Package metrics define y registra las métricas Prometheus de la API de la
// tienda. Es la única fuente de verdad para nombres, labels y help strings;
// promauto las registra en el registry por defecto al cargar el paquete.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store"

// HTTPRequestsTotal cuenta las peticiones HTTP atendidas.
// Labels:
//   - method: verbo HTTP
//   - path: ruta registrada (no la URL cruda, para acotar cardinalidad)
//   - status: código de estado de la respuesta
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP atendidas.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration mide la duración de cada petición HTTP.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// ProductsCreatedTotal cuenta productos creados, por categoría.
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total de productos creados, por categoría.",
	},
	[]string{"category"},
)

// StockRejectionsTotal cuenta ajustes de stock rechazados por dejar la cantidad
// en negativo.
var StockRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_rejections_total",
		Help:      "Total de ajustes de stock rechazados por stock insuficiente.",
	},
)

// RegistrationsTotal cuenta registros de usuario exitosos.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total de usuarios registrados.",
	},
)
