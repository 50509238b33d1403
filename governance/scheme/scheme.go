package scheme

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/onflow/flow-governance/governance"
	"github.com/onflow/flow-governance/governance/errors"
	"github.com/onflow/flow-governance/governance/notifications"
	model "github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/module"
	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// binding is the one-time configuration provided by Initialize.
type binding struct {
	organization  module.Organization
	votingMachine module.VotingMachine
	voteParams    common.Hash
}

// VoteInOrganization is a governance scheme through which an organization
// decides, by a binary proposal on its own voting machine, whether to cast a
// vote on a proposal of another voting machine.
//
// Every call runs in a single badger transaction: either all of its effects
// are committed or none are. At most one top-level call is in flight at a
// time. Calls issued by external components while a call is in flight (e.g.
// from inside the relayed vote) join the in-flight transaction if they pass on
// the context they were given, and observe its uncommitted effects. Any other
// call made meanwhile fails with errors.ReentrantCall and changes nothing.
type VoteInOrganization struct {
	log        zerolog.Logger
	db         *badger.DB
	proposals  storage.VoteProposals
	infos      storage.ProposalInfos
	events     storage.Events
	heights    module.HeightProvider
	metrics    module.GovernanceMetrics
	consumer   governance.Consumer
	reputation module.Reputation
	self       common.Address

	binding *atomic.Pointer[binding]
	mu      sync.Mutex
}

type Option func(*VoteInOrganization)

// WithMetrics sets the collector for proposal lifecycle metrics.
func WithMetrics(collector module.GovernanceMetrics) Option {
	return func(s *VoteInOrganization) {
		s.metrics = collector
	}
}

// WithConsumer sets the consumer of committed events.
func WithConsumer(consumer governance.Consumer) Option {
	return func(s *VoteInOrganization) {
		s.consumer = consumer
	}
}

// WithReputation sets the source of the organization's reputation, which
// backs the reputation callbacks queried by voting machines.
func WithReputation(reputation module.Reputation) Option {
	return func(s *VoteInOrganization) {
		s.reputation = reputation
	}
}

// New creates an uninitialized scheme. self is the address under which the
// scheme casts relayed votes.
func New(
	log zerolog.Logger,
	db *badger.DB,
	storages *storage.All,
	heights module.HeightProvider,
	self common.Address,
	opts ...Option,
) *VoteInOrganization {
	s := &VoteInOrganization{
		log:       log.With().Str("component", "vote_in_organization").Str("scheme", self.Hex()).Logger(),
		db:        db,
		proposals: storages.VoteProposals,
		infos:     storages.ProposalInfos,
		events:    storages.Events,
		heights:   heights,
		metrics:   metrics.NewNoopCollector(),
		consumer:  notifications.NewNoopConsumer(),
		self:      self,
		binding:   atomic.NewPointer[binding](nil),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Initialize binds the scheme to its organization and to the voting machine
// that decides on its proposals. It succeeds at most once per instance.
// Expected errors during normal operations:
//   - errors.InitializationError if the organization or the voting machine
//     is missing (nil, or a nil pointer), the organization has no address,
//     or the scheme was already initialized.
func (s *VoteInOrganization) Initialize(organization module.Organization, votingMachine module.VotingMachine, voteParams common.Hash) error {
	if isNil(organization) || organization.Address() == (common.Address{}) {
		return errors.NewInitializationErrorf("organization must be set")
	}
	if isNil(votingMachine) {
		return errors.NewInitializationErrorf("voting machine must be set")
	}

	swapped := s.binding.CompareAndSwap(nil, &binding{
		organization:  organization,
		votingMachine: votingMachine,
		voteParams:    voteParams,
	})
	if !swapped {
		return errors.NewInitializationErrorf("scheme %s is already initialized", s.self.Hex())
	}

	s.log.Info().
		Hex("organization", organization.Address().Bytes()).
		Hex("voting_machine", votingMachine.Address().Bytes()).
		Msg("scheme initialized")
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Address returns the address the scheme casts relayed votes with.
func (s *VoteInOrganization) Address() common.Address {
	return s.self
}

func (s *VoteInOrganization) initialized() (*binding, error) {
	b := s.binding.Load()
	if b == nil {
		return nil, errors.NewInitializationErrorf("scheme %s is not initialized", s.self.Hex())
	}
	return b, nil
}

// Proposal returns the live vote proposal with the given ID.
// Expected errors during normal operations:
//   - errors.UnknownProposal if no live proposal with the given ID exists.
func (s *VoteInOrganization) Proposal(ctx context.Context, proposalID common.Hash) (*model.VoteProposal, error) {
	var proposal *model.VoteProposal
	err := s.view(ctx, func(tx *transaction.Tx) error {
		var err error
		proposal, err = s.loadProposal(tx, proposalID)
		return err
	})
	return proposal, err
}

// PendingProposals returns the IDs of all live vote proposals.
func (s *VoteInOrganization) PendingProposals(ctx context.Context) ([]common.Hash, error) {
	var proposalIDs []common.Hash
	err := s.view(ctx, func(tx *transaction.Tx) error {
		var err error
		proposalIDs, err = s.proposals.PendingIDsTx()(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not list pending proposals: %w", err)
	}
	return proposalIDs, nil
}
