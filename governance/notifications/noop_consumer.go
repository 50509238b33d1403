package notifications

import (
	"github.com/onflow/flow-governance/governance"
	model "github.com/onflow/flow-governance/model/governance"
)

// NoopConsumer is an implementation of the notifications consumer that
// doesn't do anything.
type NoopConsumer struct{}

var _ governance.Consumer = (*NoopConsumer)(nil)

func NewNoopConsumer() *NoopConsumer {
	nc := &NoopConsumer{}
	return nc
}

func (*NoopConsumer) OnNewVoteProposal(*model.NewVoteProposal) {}

func (*NoopConsumer) OnProposalDeleted(*model.ProposalDeleted) {}

func (*NoopConsumer) OnProposalExecuted(*model.ProposalExecuted) {}
