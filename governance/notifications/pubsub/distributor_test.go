package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/governance/mock"
	"github.com/onflow/flow-governance/governance/notifications"
	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/utils/unittest"
)

func TestDistributor(t *testing.T) {
	distributor := NewDistributor()

	consumer := mock.NewConsumer(t)
	distributor.AddConsumer(consumer)
	distributor.AddConsumer(notifications.NewNoopConsumer())
	distributor.AddConsumer(notifications.NewLogConsumer(unittest.Logger()))

	var order []string
	distributor.AddOnNewVoteProposalConsumer(func(*model.NewVoteProposal) {
		order = append(order, "proposed")
	})
	distributor.AddOnProposalExecutedConsumer(func(*model.ProposalExecuted) {
		order = append(order, "executed")
	})

	id := unittest.HashFixture()
	proposed := &model.NewVoteProposal{ProposalID: id, ChosenOption: 1}
	deleted := &model.ProposalDeleted{ProposalID: id}
	executed := &model.ProposalExecuted{ProposalID: id, Decision: 1}

	consumer.On("OnNewVoteProposal", proposed).Once()
	consumer.On("OnProposalDeleted", deleted).Once()
	consumer.On("OnProposalExecuted", executed).Once()

	distributor.OnNewVoteProposal(proposed)
	distributor.OnProposalDeleted(deleted)
	distributor.OnProposalExecuted(executed)

	require.Len(t, order, 2)
	assert.Equal(t, []string{"proposed", "executed"}, order)
}
