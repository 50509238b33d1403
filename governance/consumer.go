package governance

import (
	model "github.com/onflow/flow-governance/model/governance"
)

// Consumer consumes outbound notifications produced by the vote-in-organization
// scheme. Notifications are delivered only after the storage transaction that
// produced them has been committed, in emission order.
//
// Implementations must be concurrency safe and non-blocking. They must not
// call back into the scheme.
type Consumer interface {
	// OnNewVoteProposal notifications are produced when a vote delegation
	// was proposed.
	OnNewVoteProposal(event *model.NewVoteProposal)

	// OnProposalDeleted notifications are produced when a proposal record
	// was removed while executing it.
	OnProposalDeleted(event *model.ProposalDeleted)

	// OnProposalExecuted notifications are produced when the voting machine's
	// decision on a proposal was applied.
	OnProposalExecuted(event *model.ProposalExecuted)
}
