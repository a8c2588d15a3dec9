// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CampaignsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_campaigns_created_total",
		Help: "Campaigns created through the wizard.",
	})

	MembersAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_members_added_total",
		Help: "Clients enrolled into campaigns.",
	})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_messages_sent_total",
		Help: "Simulated outbound messages dispatched successfully.",
	})

	MessagesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_messages_failed_total",
		Help: "Simulated outbound messages that failed.",
	})

	Retries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_member_retries_total",
		Help: "Failed members reset back to sent by Retry Failed.",
	})
)
