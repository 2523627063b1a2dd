package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wasitku_event_transitions_total", Help: "Total event status transitions per action"},
		[]string{"action"},
	)
	HonorTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wasitku_honor_transitions_total", Help: "Total honor status transitions per action"},
		[]string{"action"},
	)
	HonorPayouts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "wasitku_honor_payouts_total", Help: "Total honor payouts requested via Iris"},
	)
	ExportedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wasitku_exported_records_total", Help: "Total records exported per table"},
		[]string{"table"},
	)
	ImportedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wasitku_imported_records_total", Help: "Total records imported per table and outcome"},
		[]string{"table", "outcome"},
	)
	ReviewIndexed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "wasitku_reviews_indexed_total", Help: "Total referee reviews indexed into Elasticsearch"},
	)
)

func Register() {
	prometheus.MustRegister(
		EventTransitions,
		HonorTransitions,
		HonorPayouts,
		ExportedRecords,
		ImportedRecords,
		ReviewIndexed,
	)
}
