package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores Prometheus del servicio de conversión. Se registran una sola vez
// en el registro por defecto y se exponen vía /metrics.
var (
	// Conversions conversiones completadas, por operación y dimensión normalizada.
	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uom",
		Name:      "conversions_total",
		Help:      "Total de conversiones realizadas, por operación y dimensión.",
	}, []string{"operation", "dimension"})

	// InvalidUnit pares (dimensión, unidad) rechazados por el motor.
	InvalidUnit = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uom",
		Name:      "invalid_unit_total",
		Help:      "Total de pares (dimensión, unidad) rechazados.",
	}, []string{"operation"})
)
