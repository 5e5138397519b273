package spc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "spc2mqtt",
	Subsystem: "client",
	Name:      "requests_total",
	Help:      "Requests issued against the SPC Web Gateway REST API.",
})

var requestErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "spc2mqtt",
	Subsystem: "client",
	Name:      "request_errors_total",
	Help:      "Requests that produced no usable result.",
})

var siaEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "spc2mqtt",
	Subsystem: "gateway",
	Name:      "sia_events_total",
	Help:      "Push events received, by the entity class they resolved to.",
}, []string{"target"})
