package scheme

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/governance/errors"
	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/module"
)

// binaryChoices is the number of choices of the organization's own proposal:
// whether to cast the vote or not.
const binaryChoices = 2

// ProposeVote opens a proposal on the organization's voting machine to cast
// chosenOption on originalProposalID of the original voting machine. It
// returns the ID of the new proposal.
//
// Expected errors during normal operations:
//   - errors.InitializationError if the scheme is not initialized.
//   - errors.InvalidVoteRange if chosenOption is outside the range the
//     original voting machine allows, or exceeds the number of choices of
//     the original proposal.
//   - errors.ReentrantCall if another call is in flight and ctx does not
//     carry it.
//
// Errors returned by the voting machines are passed through wrapped.
func (s *VoteInOrganization) ProposeVote(
	ctx context.Context,
	proposer common.Address,
	original module.VotingMachine,
	originalProposalID common.Hash,
	chosenOption uint64,
	descriptionHash string,
) (common.Hash, error) {
	var proposalID common.Hash
	err := s.update(ctx, func(ctx context.Context, fr *frame) error {
		var err error
		proposalID, err = s.proposeVote(ctx, fr, proposer, original, originalProposalID, chosenOption, descriptionHash)
		return err
	})
	if err != nil {
		s.metrics.ProposalRejected(errors.Reason(err))
		return common.Hash{}, err
	}
	return proposalID, nil
}

func (s *VoteInOrganization) proposeVote(
	ctx context.Context,
	fr *frame,
	proposer common.Address,
	original module.VotingMachine,
	originalProposalID common.Hash,
	chosenOption uint64,
	descriptionHash string,
) (common.Hash, error) {
	b, err := s.initialized()
	if err != nil {
		return common.Hash{}, err
	}
	if original == nil {
		return common.Hash{}, fmt.Errorf("original voting machine must be set")
	}

	minVote, maxVote, err := original.GetAllowedRangeOfChoices(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not get allowed range of choices: %w", err)
	}
	numOfChoices, err := original.GetNumberOfChoices(ctx, originalProposalID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not get number of choices of %s: %w", originalProposalID.Hex(), err)
	}
	if chosenOption < minVote || chosenOption > maxVote || chosenOption > numOfChoices {
		return common.Hash{}, errors.NewInvalidVoteRangeError(chosenOption, minVote, maxVote, numOfChoices)
	}

	organization := b.organization.Address()
	votingMachine := b.votingMachine.Address()

	proposalID, err := b.votingMachine.Propose(ctx, binaryChoices, b.voteParams, proposer, organization)
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not create proposal on voting machine %s: %w", votingMachine.Hex(), err)
	}

	height, err := s.heights.CurrentHeight()
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not get current height: %w", err)
	}

	proposal := &model.VoteProposal{
		OriginalVotingMachine: original.Address(),
		OriginalProposalID:    originalProposalID,
		ChosenOption:          chosenOption,
		Exists:                true,
	}
	err = fr.apply(s.proposals.StoreTx(proposalID, proposal))
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not store vote proposal %s: %w", proposalID.Hex(), err)
	}

	info := &model.ProposalInfo{
		CreationHeight: height,
		Organization:   organization,
	}
	err = fr.apply(s.infos.StoreTx(votingMachine, proposalID, info))
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not store proposal info %s: %w", proposalID.Hex(), err)
	}

	created := &model.NewVoteProposal{
		Organization:          organization,
		ProposalID:            proposalID,
		VotingMachine:         votingMachine,
		OriginalVotingMachine: proposal.OriginalVotingMachine,
		OriginalProposalID:    originalProposalID,
		ChosenOption:          chosenOption,
		DescriptionHash:       descriptionHash,
	}
	err = fr.apply(s.events.AppendTx(model.NewVoteProposalEvent(created)))
	if err != nil {
		return common.Hash{}, err
	}

	fr.tx.OnSucceed(func() {
		s.log.Info().
			Hex("proposal_id", proposalID.Bytes()).
			Hex("original_proposal_id", originalProposalID.Bytes()).
			Uint64("chosen_option", chosenOption).
			Uint64("height", height).
			Msg("vote proposal created")
		s.metrics.ProposalCreated()
		s.consumer.OnNewVoteProposal(created)
	})

	return proposalID, nil
}
