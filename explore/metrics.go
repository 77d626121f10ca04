package explore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	gridIDLabel = "grid_id"
)

var (
	gridWidth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "explore_grid_width",
		Help: "The known width of the exploration grid.",
	}, []string{gridIDLabel})

	gridHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "explore_grid_height",
		Help: "The known height of the exploration grid.",
	}, []string{gridIDLabel})

	gridFirstVisits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explore_grid_first_visits_total",
		Help: "The number of registrations that explored a new cell.",
	}, []string{gridIDLabel})

	gridRevisits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explore_grid_revisits_total",
		Help: "The number of registrations that hit an already explored cell.",
	}, []string{gridIDLabel})
)

func instrumentSize(gridID string, width, height int) {
	gridWidth.
		With(prometheus.Labels{gridIDLabel: gridID}).
		Set(float64(width))
	gridHeight.
		With(prometheus.Labels{gridIDLabel: gridID}).
		Set(float64(height))
}

func instrumentFirstVisit(gridID string) {
	gridFirstVisits.
		With(prometheus.Labels{gridIDLabel: gridID}).
		Inc()
}

func instrumentRevisit(gridID string) {
	gridRevisits.
		With(prometheus.Labels{gridIDLabel: gridID}).
		Inc()
}

func forgetGrid(gridID string) {
	gridWidth.DeleteLabelValues(gridID)
	gridHeight.DeleteLabelValues(gridID)
	gridFirstVisits.DeleteLabelValues(gridID)
	gridRevisits.DeleteLabelValues(gridID)
}
