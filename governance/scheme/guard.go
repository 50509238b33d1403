package scheme

import (
	stderrors "errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/governance/errors"
	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// authorize returns the authorization record of proposalID if caller is the
// voting machine that the proposal was created on, for this organization.
// Expected errors during normal operations:
//   - errors.Unauthorized if caller holds no record for the proposal.
func (s *VoteInOrganization) authorize(tx *transaction.Tx, b *binding, caller common.Address, proposalID common.Hash) (*model.ProposalInfo, error) {
	info, err := s.infos.ByIDTx(caller, proposalID)(tx)
	if stderrors.Is(err, storage.ErrNotFound) {
		return nil, errors.NewUnauthorizedError(caller, proposalID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve proposal info: %w", err)
	}

	if info.Organization != b.organization.Address() {
		return nil, errors.NewUnauthorizedError(caller, proposalID)
	}

	return info, nil
}

// loadProposal returns the live vote proposal with the given ID.
// Expected errors during normal operations:
//   - errors.UnknownProposal if no live proposal with the given ID exists.
func (s *VoteInOrganization) loadProposal(tx *transaction.Tx, proposalID common.Hash) (*model.VoteProposal, error) {
	proposal, err := s.proposals.ByIDTx(proposalID)(tx)
	if stderrors.Is(err, storage.ErrNotFound) {
		return nil, errors.NewUnknownProposalError(proposalID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve vote proposal: %w", err)
	}
	if !proposal.Exists {
		return nil, errors.NewUnknownProposalError(proposalID)
	}
	return proposal, nil
}
