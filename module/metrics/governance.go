package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-governance/module"
)

// GovernanceCollector implements metric collection for the vote-in-organization scheme.
type GovernanceCollector struct {
	created   prometheus.Counter
	executed  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	relayFail prometheus.Counter
}

var _ module.GovernanceMetrics = (*GovernanceCollector)(nil)

func NewGovernanceCollector(registerer prometheus.Registerer) *GovernanceCollector {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Subsystem: subsystemProposals,
		Name:      "created_total",
		Help:      "number of vote proposals committed",
	})
	executed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Subsystem: subsystemProposals,
		Name:      "executed_total",
		Help:      "number of vote proposals executed, by whether the vote was relayed",
	}, []string{LabelOutcome})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Subsystem: subsystemProposals,
		Name:      "rejected_total",
		Help:      "number of proposal or execution calls that failed, by reason",
	}, []string{LabelReason})
	relayFail := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Subsystem: subsystemRelay,
		Name:      "failures_total",
		Help:      "number of relayed vote calls that did not succeed; the surrounding execution was rolled back",
	})
	registerer.MustRegister(created, executed, rejected, relayFail)

	return &GovernanceCollector{
		created:   created,
		executed:  executed,
		rejected:  rejected,
		relayFail: relayFail,
	}
}

func (gc *GovernanceCollector) ProposalCreated() {
	gc.created.Inc()
}

func (gc *GovernanceCollector) ProposalExecuted(relayed bool) {
	outcome := OutcomeSkipped
	if relayed {
		outcome = OutcomeRelayed
	}
	gc.executed.WithLabelValues(outcome).Inc()
}

func (gc *GovernanceCollector) ProposalRejected(reason string) {
	gc.rejected.WithLabelValues(reason).Inc()
}

func (gc *GovernanceCollector) RelayCallFailed() {
	gc.relayFail.Inc()
}
