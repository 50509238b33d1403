package notifications

import (
	"github.com/rs/zerolog"

	"github.com/onflow/flow-governance/governance"
	model "github.com/onflow/flow-governance/model/governance"
)

// LogConsumer is an implementation of the notifications consumer that logs a
// message for each event.
type LogConsumer struct {
	log zerolog.Logger
}

var _ governance.Consumer = (*LogConsumer)(nil)

func NewLogConsumer(log zerolog.Logger) *LogConsumer {
	lc := &LogConsumer{
		log: log,
	}
	return lc
}

func (lc *LogConsumer) OnNewVoteProposal(event *model.NewVoteProposal) {
	lc.log.Info().
		Hex("proposal_id", event.ProposalID[:]).
		Hex("organization", event.Organization[:]).
		Hex("voting_machine", event.VotingMachine[:]).
		Hex("original_voting_machine", event.OriginalVotingMachine[:]).
		Hex("original_proposal_id", event.OriginalProposalID[:]).
		Uint64("chosen_option", event.ChosenOption).
		Str("description_hash", event.DescriptionHash).
		Msg("new vote proposal")
}

func (lc *LogConsumer) OnProposalDeleted(event *model.ProposalDeleted) {
	lc.log.Debug().
		Hex("proposal_id", event.ProposalID[:]).
		Hex("organization", event.Organization[:]).
		Msg("proposal deleted")
}

func (lc *LogConsumer) OnProposalExecuted(event *model.ProposalExecuted) {
	entry := lc.log.Info()
	if event.Decision != 1 && event.Decision != 2 {
		entry = lc.log.Warn()
	}
	entry.
		Hex("proposal_id", event.ProposalID[:]).
		Hex("organization", event.Organization[:]).
		Int64("decision", event.Decision).
		Int("return_size", len(event.ReturnData)).
		Msg("proposal executed")
}
