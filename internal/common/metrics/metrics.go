package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_dispatch_total",
			Help: "Total number of dispatch invocations by outcome",
		},
		[]string{"outcome"},
	)

	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "notifier_dispatch_duration_seconds",
			Help: "Duration of a single dispatch in seconds",
		},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_emails_sent_total",
			Help: "Total number of notification emails handed to the gateway",
		},
		[]string{"audience"},
	)

	SMSTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_sms_total",
			Help: "Total number of SMS notification attempts by outcome",
		},
		[]string{"outcome"},
	)

	GatewayFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_gateway_failures_total",
			Help: "Total number of messaging gateway errors by channel",
		},
		[]string{"channel"},
	)
)
