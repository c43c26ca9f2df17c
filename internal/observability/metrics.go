package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	discoveryRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "waggle_api",
		Subsystem: "discovery",
		Name:      "runs_total",
		Help:      "Completed automatic discovery runs.",
	})
	discoveredActivities = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waggle_api",
		Subsystem: "discovery",
		Name:      "activities_total",
		Help:      "Discovered activities stored, by approval outcome.",
	}, []string{"approval"})
	scheduleWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waggle_api",
		Subsystem: "schedule",
		Name:      "writes_total",
		Help:      "Schedule mutations, by operation.",
	}, []string{"op"})
	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waggle_api",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Activity list cache lookups, by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(discoveryRuns, discoveredActivities, scheduleWrites, cacheLookups)
}

func RecordDiscoveryRun() { discoveryRuns.Inc() }

func RecordDiscoveredActivity(approval string) {
	discoveredActivities.WithLabelValues(approval).Inc()
}

func RecordScheduleWrite(op string) { scheduleWrites.WithLabelValues(op).Inc() }

func RecordCacheLookup(result string) { cacheLookups.WithLabelValues(result).Inc() }
