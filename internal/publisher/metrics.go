package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// eventsProcessed counts events fully published, per kind and network.
	eventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_events_processed_total",
			Help: "Total number of events published",
		},
		[]string{"kind", "network"},
	)

	// eventsSkipped counts events ignored because their network is not configured.
	eventsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_events_skipped_total",
			Help: "Total number of events for networks that are not configured",
		},
		[]string{"kind", "network"},
	)

	// eventsFailed counts events discarded because of a processing error.
	eventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_events_failed_total",
			Help: "Total number of events that failed to be published",
		},
		[]string{"kind"},
	)

	// framesEmitted counts frames handed to the transport.
	framesEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_frames_emitted_total",
			Help: "Total number of frames handed to the transport",
		},
		[]string{"topic", "network"},
	)

	// framesDropped counts frames rejected by an overloaded transport.
	framesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chainpub_frames_dropped_total",
			Help: "Total number of frames dropped by the transport high-water-mark",
		},
	)

	// queueDropped counts events discarded by the event queue.
	queueDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_queue_dropped_total",
			Help: "Total number of events dropped by the event queue",
		},
		[]string{"kind"},
	)

	// queueDepth tracks the number of events waiting to be processed.
	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chainpub_queue_depth",
			Help: "Number of events waiting to be processed",
		},
	)
)
