package pubsub

import (
	"sync"

	"github.com/onflow/flow-governance/governance"
	model "github.com/onflow/flow-governance/model/governance"
)

type OnNewVoteProposalConsumer = func(event *model.NewVoteProposal)
type OnProposalExecutedConsumer = func(event *model.ProposalExecuted)

// Distributor subscribes for scheme events and distributes them to
// subscribers. Subscribers are notified in the order they were added.
type Distributor struct {
	newVoteProposalConsumers  []OnNewVoteProposalConsumer
	proposalExecutedConsumers []OnProposalExecutedConsumer
	consumers                 []governance.Consumer
	lock                      sync.RWMutex
}

var _ governance.Consumer = (*Distributor)(nil)

func NewDistributor() *Distributor {
	return &Distributor{
		newVoteProposalConsumers:  make([]OnNewVoteProposalConsumer, 0),
		proposalExecutedConsumers: make([]OnProposalExecutedConsumer, 0),
		lock:                      sync.RWMutex{},
	}
}

func (d *Distributor) AddOnNewVoteProposalConsumer(consumer OnNewVoteProposalConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.newVoteProposalConsumers = append(d.newVoteProposalConsumers, consumer)
}

func (d *Distributor) AddOnProposalExecutedConsumer(consumer OnProposalExecutedConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.proposalExecutedConsumers = append(d.proposalExecutedConsumers, consumer)
}

func (d *Distributor) AddConsumer(consumer governance.Consumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.consumers = append(d.consumers, consumer)
}

func (d *Distributor) OnNewVoteProposal(event *model.NewVoteProposal) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.newVoteProposalConsumers {
		consumer(event)
	}
	for _, consumer := range d.consumers {
		consumer.OnNewVoteProposal(event)
	}
}

func (d *Distributor) OnProposalDeleted(event *model.ProposalDeleted) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnProposalDeleted(event)
	}
}

func (d *Distributor) OnProposalExecuted(event *model.ProposalExecuted) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.proposalExecutedConsumers {
		consumer(event)
	}
	for _, consumer := range d.consumers {
		consumer.OnProposalExecuted(event)
	}
}
