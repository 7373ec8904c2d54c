package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GimnasiosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gimnasio",
		Name:      "gimnasios_created_total",
		Help:      "Total number of gyms registered",
	})

	ClientesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gimnasio",
		Name:      "clientes_created_total",
		Help:      "Total number of gym members registered",
	})

	ExportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gimnasio",
		Name:      "exports_generated_total",
		Help:      "Total number of Excel exports generated",
	})

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gimnasio",
			Name:      "login_attempts_total",
			Help:      "Login attempts by result",
		},
		[]string{"result"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gimnasio",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Middleware observa duración y status por ruta registrada.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		RequestDuration.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Observe(time.Since(start).Seconds())
	}
}

// Handler expone /metrics en formato Prometheus.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
