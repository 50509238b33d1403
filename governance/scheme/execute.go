package scheme

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/governance/errors"
	"github.com/onflow/flow-governance/governance/relay"
	model "github.com/onflow/flow-governance/model/governance"
)

// DecisionYes is the decision on which the vote is relayed. Any other
// decision closes the proposal without voting.
const DecisionYes = int64(1)

// ExecuteProposal applies the decision of the voting machine on a proposal.
// The proposal is removed before the vote is relayed, so it executes at most
// once even if the relay re-enters the scheme. If the relay fails, nothing of
// the execution is committed and the proposal stays live.
//
// Expected errors during normal operations:
//   - errors.InitializationError if the scheme is not initialized.
//   - errors.Unauthorized if caller is not the voting machine the proposal
//     was created on.
//   - errors.UnknownProposal if the proposal was already executed.
//   - errors.RelayCallFailed if the organization could not deliver the vote.
//   - errors.ReentrantCall if another call is in flight and ctx does not
//     carry it.
func (s *VoteInOrganization) ExecuteProposal(ctx context.Context, caller common.Address, proposalID common.Hash, decision int64) (bool, error) {
	err := s.update(ctx, func(ctx context.Context, fr *frame) error {
		_, err := s.executeProposal(ctx, fr, caller, proposalID, decision)
		return err
	})
	if err != nil {
		if errors.IsRelayCallFailedError(err) {
			s.metrics.RelayCallFailed()
		}
		s.metrics.ProposalRejected(errors.Reason(err))
		return false, err
	}
	return true, nil
}

func (s *VoteInOrganization) executeProposal(ctx context.Context, fr *frame, caller common.Address, proposalID common.Hash, decision int64) (bool, error) {
	b, err := s.initialized()
	if err != nil {
		return false, err
	}

	_, err = s.authorize(fr.tx, b, caller, proposalID)
	if err != nil {
		return false, err
	}

	proposal, err := s.loadProposal(fr.tx, proposalID)
	if err != nil {
		return false, err
	}

	organization := b.organization.Address()

	// remove the proposal before handing control to the organization
	err = fr.apply(s.proposals.RemoveTx(proposalID))
	if err != nil {
		return false, fmt.Errorf("could not remove vote proposal %s: %w", proposalID.Hex(), err)
	}
	deleted := &model.ProposalDeleted{
		Organization: organization,
		ProposalID:   proposalID,
	}
	err = fr.apply(s.events.AppendTx(model.ProposalDeletedEvent(deleted)))
	if err != nil {
		return false, err
	}

	var returnData []byte
	relayed := decision == DecisionYes
	if relayed {
		returnData, err = s.relayVote(ctx, b, proposalID, proposal)
		if err != nil {
			return false, err
		}
	}

	executed := &model.ProposalExecuted{
		Organization: organization,
		ProposalID:   proposalID,
		Decision:     decision,
		ReturnData:   returnData,
	}
	err = fr.apply(s.events.AppendTx(model.ProposalExecutedEvent(executed)))
	if err != nil {
		return false, err
	}

	fr.tx.OnSucceed(func() {
		s.log.Info().
			Hex("proposal_id", proposalID.Bytes()).
			Int64("decision", decision).
			Bool("relayed", relayed).
			Msg("vote proposal executed")
		s.metrics.ProposalExecuted(relayed)
		s.consumer.OnProposalDeleted(deleted)
		s.consumer.OnProposalExecuted(executed)
	})

	return relayed, nil
}

// relayVote has the organization cast the chosen option on the original
// proposal and returns the raw return data of the call.
func (s *VoteInOrganization) relayVote(ctx context.Context, b *binding, proposalID common.Hash, proposal *model.VoteProposal) ([]byte, error) {
	target := proposal.OriginalVotingMachine

	data, err := relay.EncodeVote(proposal.OriginalProposalID, proposal.ChosenOption, big.NewInt(0), s.self)
	if err != nil {
		return nil, fmt.Errorf("could not encode relayed vote: %w", err)
	}

	success, returnData, err := b.organization.GenericCall(ctx, target, data, big.NewInt(0))
	if err != nil {
		s.log.Warn().Err(err).
			Hex("proposal_id", proposalID.Bytes()).
			Hex("target", target.Bytes()).
			Msg("relayed vote could not be delivered")
		return nil, errors.NewRelayCallFailedError(target, proposalID, err)
	}
	if !success {
		s.log.Warn().
			Hex("proposal_id", proposalID.Bytes()).
			Hex("target", target.Bytes()).
			Msg("relayed vote rejected")
		return nil, errors.NewRelayCallFailedError(target, proposalID, nil)
	}

	return returnData, nil
}
