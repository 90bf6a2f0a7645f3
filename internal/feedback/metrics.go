package feedback

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DroppedTemplates counts template strings discarded during parsing.
// Registered by the server on startup.
var DroppedTemplates = prometheus.NewCounter(prometheus.CounterOpts{
	Subsystem: "feedback",
	Name:      "dropped_templates_total",
	Help:      "The number of feedback templates dropped because they were malformed or empty",
})
