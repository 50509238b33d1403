package scheme

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// ReputationOf returns the reputation owner held in the organization at the
// height proposalID was created. Voting machines query it while tallying.
// It returns zero if caller holds no record for the proposal.
func (s *VoteInOrganization) ReputationOf(ctx context.Context, caller common.Address, owner common.Address, proposalID common.Hash) (*big.Int, error) {
	info, err := s.creationInfo(ctx, caller, proposalID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return big.NewInt(0), nil
	}

	balance, err := s.reputation.BalanceOfAt(ctx, owner, info.CreationHeight)
	if err != nil {
		return nil, fmt.Errorf("could not get reputation of %s at height %d: %w", owner.Hex(), info.CreationHeight, err)
	}
	return balance, nil
}

// TotalReputationSupply returns the total reputation of the organization at
// the height proposalID was created. It returns zero if caller holds no
// record for the proposal.
func (s *VoteInOrganization) TotalReputationSupply(ctx context.Context, caller common.Address, proposalID common.Hash) (*big.Int, error) {
	info, err := s.creationInfo(ctx, caller, proposalID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return big.NewInt(0), nil
	}

	supply, err := s.reputation.TotalSupplyAt(ctx, info.CreationHeight)
	if err != nil {
		return nil, fmt.Errorf("could not get total reputation at height %d: %w", info.CreationHeight, err)
	}
	return supply, nil
}

// creationInfo returns the record of proposalID held by caller, or nil if
// there is none.
func (s *VoteInOrganization) creationInfo(ctx context.Context, caller common.Address, proposalID common.Hash) (*model.ProposalInfo, error) {
	if s.reputation == nil {
		return nil, fmt.Errorf("scheme %s has no reputation source", s.self.Hex())
	}

	var info *model.ProposalInfo
	err := s.view(ctx, func(tx *transaction.Tx) error {
		var err error
		info, err = s.infos.ByIDTx(caller, proposalID)(tx)
		return err
	})
	if stderrors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve proposal info: %w", err)
	}
	return info, nil
}
