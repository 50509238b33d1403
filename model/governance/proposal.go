package governance

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// VoteProposal is a pending delegation of this organization's vote into a
// proposal of another voting machine. It is immutable once created and is
// removed exactly once, when the local voting machine executes the proposal.
type VoteProposal struct {
	// OriginalVotingMachine is the voting machine whose proposal receives the vote.
	OriginalVotingMachine common.Address
	// OriginalProposalID identifies the proposal inside OriginalVotingMachine.
	OriginalProposalID common.Hash
	// ChosenOption is the option the organization commits to vote for.
	ChosenOption uint64
	// Exists is set on every stored record; a removed record is absent.
	Exists bool
}

func (p VoteProposal) String() string {
	return fmt.Sprintf("vote(%s, %s, option=%d)", p.OriginalVotingMachine.Hex(), p.OriginalProposalID.Hex(), p.ChosenOption)
}

// ProposalInfo records which organization a voting machine proposal belongs to
// and the height it was created at. Records are written together with the
// proposal and are never removed.
type ProposalInfo struct {
	CreationHeight uint64
	Organization   common.Address
}

// HexToProposalID parses a 32 byte hex string, with or without 0x prefix.
func HexToProposalID(s string) (common.Hash, error) {
	b, err := decodeHex(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("malformed proposal ID %q: %w", s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("malformed proposal ID %q: expected %d bytes, got %d", s, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// HexToAddress parses a 20 byte hex string, with or without 0x prefix.
func HexToAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("malformed address %q", s)
	}
	return common.HexToAddress(s), nil
}

func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
