// Package metrics exposes Prometheus collectors for the ring, pool and
// ledger components of tachyoncore. Like telemetry, it is wired in
// only at the edge (cmd/tachyon-bench): the core never imports it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joeycumines/go-tachyoncore"
)

// Collectors groups the counters and gauges a caller registers against
// a prometheus.Registerer to observe a running tachyon-bench harness.
type Collectors struct {
	RingOccupancy      prometheus.Gauge
	PoolCheckouts      prometheus.Counter
	DecisionsAccepted  prometheus.Counter
	DecisionsInspira   prometheus.Counter
	DecisionsFirma     prometheus.Counter
	DecisionsAudit     prometheus.Counter
	ShadowCommits      prometheus.Counter
	ReplayRecordsTotal prometheus.Counter
}

// New builds the Collectors and registers each of them against reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		RingOccupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tachyoncore_ring_occupancy",
			Help: "Number of envelopes currently queued in the SPMC ring.",
		}),
		PoolCheckouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_pool_checkouts_total",
			Help: "Total number of envelope pool checkouts.",
		}),
		DecisionsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_governance_decisions_total",
			Help: "Governance decisions, labelled by outcome.",
			ConstLabels: prometheus.Labels{
				"decision": tachyoncore.Accepted.String(),
			},
		}),
		DecisionsInspira: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_governance_decisions_total",
			Help: "Governance decisions, labelled by outcome.",
			ConstLabels: prometheus.Labels{
				"decision": tachyoncore.DecisionInspiraRejected.String(),
			},
		}),
		DecisionsFirma: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_governance_decisions_total",
			Help: "Governance decisions, labelled by outcome.",
			ConstLabels: prometheus.Labels{
				"decision": tachyoncore.DecisionFirmaRejected.String(),
			},
		}),
		DecisionsAudit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_governance_decisions_total",
			Help: "Governance decisions, labelled by outcome.",
			ConstLabels: prometheus.Labels{
				"decision": tachyoncore.DecisionAuditRejected.String(),
			},
		}),
		ShadowCommits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_shadow_commits_total",
			Help: "Speculative entries confirmed committed in the shadow ledger.",
		}),
		ReplayRecordsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tachyoncore_replay_records_total",
			Help: "Records appended to the replay log.",
		}),
	}

	for _, coll := range []prometheus.Collector{
		c.RingOccupancy,
		c.PoolCheckouts,
		c.DecisionsAccepted,
		c.DecisionsInspira,
		c.DecisionsFirma,
		c.DecisionsAudit,
		c.ShadowCommits,
		c.ReplayRecordsTotal,
	} {
		if err := reg.Register(coll); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveDecision routes a governance decision to the matching counter.
func (c *Collectors) ObserveDecision(decision tachyoncore.Decision) {
	switch decision {
	case tachyoncore.Accepted:
		c.DecisionsAccepted.Inc()
	case tachyoncore.DecisionInspiraRejected:
		c.DecisionsInspira.Inc()
	case tachyoncore.DecisionFirmaRejected:
		c.DecisionsFirma.Inc()
	case tachyoncore.DecisionAuditRejected:
		c.DecisionsAudit.Inc()
	}
}
