// Package metrics exposes prometheus collectors for the admin core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_transitions_total",
		Help: "Total number of committed status transitions",
	}, []string{"entity", "to_status"})

	IllegalTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "illegal_transitions_total",
		Help: "Total number of rejected transition requests",
	}, []string{"entity"})

	EntitiesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entities_created_total",
		Help: "Total number of entities created",
	}, []string{"entity"})

	NotificationPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_publish_failures_total",
		Help: "Total number of notification events that failed to publish",
	})
)
