package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WinnerBatchesStored = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sargalayam_winner_batches_total",
	Help: "Number of winner submission batches stored",
})

var ResultsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sargalayam_results_deleted_total",
	Help: "Number of results deleted by admins",
})

var PosterRenders = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sargalayam_poster_renders_total",
	Help: "Number of posters rendered by template",
}, []string{"template"})

var FeedMessagesPublished = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sargalayam_feed_messages_total",
	Help: "Number of messages published to the results feed",
})

var ContactMessagesReceived = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sargalayam_contact_messages_total",
	Help: "Number of contact messages received",
})

var LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "sargalayam_live_connections",
	Help: "Current number of live results websocket connections",
})
