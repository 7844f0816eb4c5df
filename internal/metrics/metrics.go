// Package metrics exposes prometheus counters for the engagement pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EngagementsScheduled counts queue items created by the scheduler,
	// labeled by engagement type.
	EngagementsScheduled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engagements_scheduled_total",
		Help: "Queue items created by the scheduler",
	}, []string{"type"})

	// EngagementsProcessed counts processed queue items by terminal status.
	EngagementsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engagements_processed_total",
		Help: "Queue items processed to a terminal state",
	}, []string{"status"})

	// SchedulerRuns counts scheduler invocations.
	SchedulerRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_runs_total",
		Help: "Scheduler invocations",
	})
)
