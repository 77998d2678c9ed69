package circuit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var swapsCounter prometheus.Counter

var importsCounter prometheus.Counter

var circuitsGauge prometheus.Gauge

func SetupCircuitMetrics() {
	swapsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "netboxd",
		Subsystem: "termination",
		Name:      "swaps_total",
		Help:      "Number of successful termination side swaps",
	})

	importsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "netboxd",
		Subsystem: "circuits",
		Name:      "imported_total",
		Help:      "Number of circuits created via bulk import",
	})

	circuitsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "netboxd",
		Subsystem: "circuits",
		Name:      "defined",
		Help:      "Total number of circuits defined",
	})
}

func UpdateCircuitsGauge() {
	if circuitsGauge == nil {
		return
	}

	var count int64

	db := GetCircuitDB()
	db.Model(&Circuit{}).Count(&count)

	circuitsGauge.Set(float64(count))
}
