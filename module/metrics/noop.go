package metrics

import (
	"github.com/onflow/flow-governance/module"
)

type NoopCollector struct{}

var _ module.GovernanceMetrics = (*NoopCollector)(nil)
var _ module.CacheMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint) {}
func (nc *NoopCollector) CacheHit(resource string)                   {}
func (nc *NoopCollector) CacheNotFound(resource string)              {}
func (nc *NoopCollector) CacheMiss(resource string)                  {}
func (nc *NoopCollector) ProposalCreated()                           {}
func (nc *NoopCollector) ProposalExecuted(relayed bool)              {}
func (nc *NoopCollector) ProposalRejected(reason string)             {}
func (nc *NoopCollector) RelayCallFailed()                           {}
