package scheme

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/governance/errors"
	"github.com/onflow/flow-governance/governance/notifications/pubsub"
	"github.com/onflow/flow-governance/governance/relay"
	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/module/organization"
	"github.com/onflow/flow-governance/storage"
	badgerstorage "github.com/onflow/flow-governance/storage/badger"
	"github.com/onflow/flow-governance/utils/unittest"
	"github.com/onflow/flow-governance/utils/unittest/mocks"
)

// network wires a scheme to an in-process organization and in-memory voting
// machines, so that relayed votes travel the full path.
type network struct {
	scheme       *VoteInOrganization
	storages     *storage.All
	organization *organization.Controller
	local        *mocks.VotingMachine
	original     *mocks.VotingMachine
	heights      *mocks.Heights
	executed     []*model.ProposalExecuted
	created      []*model.NewVoteProposal
}

func newNetwork(t *testing.T, db *badger.DB) *network {
	n := &network{
		storages:     badgerstorage.InitAll(metrics.NewNoopCollector(), db, badgerstorage.DefaultCacheSize),
		organization: organization.NewController(unittest.Logger(), unittest.AddressFixture()),
		local:        mocks.NewVotingMachine(unittest.AddressFixture(), 0, 2),
		original:     mocks.NewVotingMachine(unittest.AddressFixture(), 0, 1),
		heights:      mocks.NewHeights(10),
	}

	distributor := pubsub.NewDistributor()
	distributor.AddOnNewVoteProposalConsumer(func(event *model.NewVoteProposal) {
		n.created = append(n.created, event)
	})
	distributor.AddOnProposalExecutedConsumer(func(event *model.ProposalExecuted) {
		n.executed = append(n.executed, event)
	})

	n.scheme = New(unittest.Logger(), db, n.storages, n.heights, unittest.AddressFixture(), WithConsumer(distributor))
	require.NoError(t, n.scheme.Initialize(n.organization, n.local, unittest.HashFixture()))
	require.NoError(t, n.organization.Register(n.original.Address(), relay.NewVotingMachineCallee(n.original)))
	return n
}

// proposeVote opens a proposal with two choices on the original voting
// machine and proposes to vote option on it.
func (n *network) proposeVote(t *testing.T, option uint64) (common.Hash, common.Hash) {
	ctx := context.Background()
	originalProposalID, err := n.original.Propose(ctx, 2, common.Hash{}, unittest.AddressFixture(), unittest.AddressFixture())
	require.NoError(t, err)

	proposalID, err := n.scheme.ProposeVote(ctx, unittest.AddressFixture(), n.original, originalProposalID, option, "ipfs-hash")
	require.NoError(t, err)
	return proposalID, originalProposalID
}

func (n *network) isLive(t *testing.T, proposalID common.Hash) bool {
	_, err := n.scheme.Proposal(context.Background(), proposalID)
	if errors.IsUnknownProposalError(err) {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestEndToEnd_RelayedVote(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)
		ctx := context.Background()

		proposalID, originalProposalID := n.proposeVote(t, 1)
		require.Len(t, n.created, 1)
		assert.Equal(t, uint64(1), n.created[0].ChosenOption)
		assert.Equal(t, n.local.Address(), n.created[0].VotingMachine)

		proposer, org, ok := n.local.Proposer(proposalID)
		require.True(t, ok)
		assert.NotEqual(t, common.Address{}, proposer)
		assert.Equal(t, n.organization.Address(), org)

		ok, err := n.scheme.ExecuteProposal(ctx, n.local.Address(), proposalID, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		votes := n.original.Votes()
		require.Len(t, votes, 1)
		assert.Equal(t, originalProposalID, votes[0].ProposalID)
		assert.Equal(t, uint64(1), votes[0].Option)
		assert.Equal(t, 0, votes[0].Amount.Sign())
		assert.Equal(t, n.scheme.Address(), votes[0].Voter)

		assert.False(t, n.isLive(t, proposalID))
		require.Len(t, n.executed, 1)
		assert.Equal(t, int64(1), n.executed[0].Decision)
		decided, err := relay.DecodeVoteResult(n.executed[0].ReturnData)
		require.NoError(t, err)
		assert.False(t, decided)

		_, err = n.scheme.ExecuteProposal(ctx, n.local.Address(), proposalID, 1)
		assert.True(t, errors.IsUnknownProposalError(err))
		assert.Len(t, n.original.Votes(), 1)
	})
}

func TestEndToEnd_Rejected(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)

		proposalID, _ := n.proposeVote(t, 1)
		ok, err := n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Empty(t, n.original.Votes())
		assert.False(t, n.isLive(t, proposalID))
		require.Len(t, n.executed, 1)
		assert.Equal(t, int64(2), n.executed[0].Decision)
		assert.Empty(t, n.executed[0].ReturnData)

		events, err := n.storages.Events.ByProposal(proposalID)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Len(t, model.EventsList(events).ByType(model.EventProposalDeleted), 1)
	})
}

// A vote the original voting machine refuses leaves the proposal live.
func TestEndToEnd_RelayRejectedByOriginal(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)
		proposalID, _ := n.proposeVote(t, 1)

		n.original.OnVote = func(context.Context, mocks.Vote) error {
			return assert.AnError
		}
		_, err := n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 1)
		require.True(t, errors.IsRelayCallFailedError(err))
		assert.True(t, n.isLive(t, proposalID))
		assert.Empty(t, n.executed)

		n.original.OnVote = nil
		_, err = n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 1)
		require.NoError(t, err)
		assert.False(t, n.isLive(t, proposalID))
	})
}

// A relayed vote that re-enters the scheme observes the proposal as already
// removed and cannot execute it a second time.
func TestReentrancy_SameProposal(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)
		proposalID, _ := n.proposeVote(t, 1)

		var nestedErr, lookupErr error
		calls := 0
		n.original.OnVote = func(ctx context.Context, _ mocks.Vote) error {
			calls++
			_, lookupErr = n.scheme.Proposal(ctx, proposalID)
			_, nestedErr = n.scheme.ExecuteProposal(ctx, n.local.Address(), proposalID, 1)
			return nil
		}

		ok, err := n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, 1, calls)
		assert.True(t, errors.IsUnknownProposalError(lookupErr))
		assert.True(t, errors.IsUnknownProposalError(nestedErr))
		assert.Len(t, n.original.Votes(), 1)
		require.Len(t, n.executed, 1)
	})
}

// Nested calls on other proposals commit together with the outer execution.
func TestReentrancy_OtherProposal(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)
		first, _ := n.proposeVote(t, 1)
		second, _ := n.proposeVote(t, 0)

		n.original.OnVote = func(ctx context.Context, vote mocks.Vote) error {
			_, err := n.scheme.ExecuteProposal(ctx, n.local.Address(), second, 2)
			return err
		}

		_, err := n.scheme.ExecuteProposal(context.Background(), n.local.Address(), first, 1)
		require.NoError(t, err)

		assert.False(t, n.isLive(t, first))
		assert.False(t, n.isLive(t, second))
		require.Len(t, n.executed, 2)
		// the nested execution completes first
		assert.Equal(t, second, n.executed[0].ProposalID)
		assert.Equal(t, first, n.executed[1].ProposalID)
	})
}

// A nested call that fails after removing a proposal cannot be undone on its
// own, so the outer execution fails and nothing is committed.
func TestReentrancy_NestedFailureAbortsOuter(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)

		refusing := mocks.NewVotingMachine(unittest.AddressFixture(), 0, 1)
		refusing.OnVote = func(context.Context, mocks.Vote) error {
			return assert.AnError
		}
		require.NoError(t, n.organization.Register(refusing.Address(), relay.NewVotingMachineCallee(refusing)))

		refusedProposalID, err := refusing.Propose(context.Background(), 2, common.Hash{}, common.Address{}, common.Address{})
		require.NoError(t, err)
		inner, err := n.scheme.ProposeVote(context.Background(), unittest.AddressFixture(), refusing, refusedProposalID, 1, "")
		require.NoError(t, err)
		outer, _ := n.proposeVote(t, 1)

		var nestedErr error
		n.original.OnVote = func(ctx context.Context, _ mocks.Vote) error {
			_, nestedErr = n.scheme.ExecuteProposal(ctx, n.local.Address(), inner, 1)
			return nil
		}

		_, err = n.scheme.ExecuteProposal(context.Background(), n.local.Address(), outer, 1)
		require.True(t, errors.IsRelayCallFailedError(nestedErr))
		require.True(t, errors.IsRelayCallFailedError(err))

		assert.True(t, n.isLive(t, inner))
		assert.True(t, n.isLive(t, outer))
		assert.Empty(t, n.executed)
	})
}

// Calls that re-enter the scheme without the context of the in-flight call
// are refused instead of waiting for it, and leave the outer call intact.
func TestReentrancy_WithoutContext(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		n := newNetwork(t, db)
		proposalID, originalProposalID := n.proposeVote(t, 1)
		other, _ := n.proposeVote(t, 0)

		var executeErr, proposeErr error
		n.original.OnVote = func(context.Context, mocks.Vote) error {
			_, executeErr = n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 1)
			_, proposeErr = n.scheme.ProposeVote(context.Background(), unittest.AddressFixture(), n.original, originalProposalID, 1, "")
			return nil
		}

		var ok bool
		var err error
		unittest.RequireReturnsBefore(t, func() {
			ok, err = n.scheme.ExecuteProposal(context.Background(), n.local.Address(), proposalID, 1)
		}, 2*time.Second, "outer execution did not return")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, errors.IsReentrantCallError(executeErr))
		assert.True(t, errors.IsReentrantCallError(proposeErr))

		assert.Len(t, n.original.Votes(), 1)
		require.Len(t, n.executed, 1)
		assert.Len(t, n.created, 2)
		assert.False(t, n.isLive(t, proposalID))
		assert.True(t, n.isLive(t, other))

		// the scheme accepts calls again once the outer call returned
		_, err = n.scheme.ExecuteProposal(context.Background(), n.local.Address(), other, 2)
		require.NoError(t, err)
		assert.False(t, n.isLive(t, other))
	})
}
