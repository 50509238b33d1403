package badger

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/module"
	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/operation"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// proposalKey identifies a proposal of a specific voting machine.
type proposalKey struct {
	votingMachine common.Address
	proposalID    common.Hash
}

// ProposalInfos implements persistent storage for proposal authorization
// records. Records are immutable, which allows caching them.
type ProposalInfos struct {
	db    *badger.DB
	cache *Cache[proposalKey, *governance.ProposalInfo]
}

var _ storage.ProposalInfos = (*ProposalInfos)(nil)

func NewProposalInfos(collector module.CacheMetrics, db *badger.DB, cacheSize uint) *ProposalInfos {

	store := func(key proposalKey, info *governance.ProposalInfo) func(*badger.Txn) error {
		return operation.InsertProposalInfo(key.votingMachine, key.proposalID, info)
	}

	retrieve := func(key proposalKey) func(*badger.Txn) (*governance.ProposalInfo, error) {
		return func(tx *badger.Txn) (*governance.ProposalInfo, error) {
			var info governance.ProposalInfo
			err := operation.RetrieveProposalInfo(key.votingMachine, key.proposalID, &info)(tx)
			return &info, err
		}
	}

	return &ProposalInfos{
		db: db,
		cache: newCache[proposalKey, *governance.ProposalInfo](collector,
			withLimit[proposalKey, *governance.ProposalInfo](cacheSize),
			withStore[proposalKey, *governance.ProposalInfo](store),
			withRetrieve[proposalKey, *governance.ProposalInfo](retrieve),
			withResource[proposalKey, *governance.ProposalInfo](metrics.ResourceProposalInfo)),
	}
}

func (pi *ProposalInfos) StoreTx(votingMachine common.Address, proposalID common.Hash, info *governance.ProposalInfo) func(*transaction.Tx) error {
	return pi.cache.PutTx(proposalKey{votingMachine: votingMachine, proposalID: proposalID}, info)
}

func (pi *ProposalInfos) ByIDTx(votingMachine common.Address, proposalID common.Hash) func(*transaction.Tx) (*governance.ProposalInfo, error) {
	return pi.cache.Get(proposalKey{votingMachine: votingMachine, proposalID: proposalID})
}

func (pi *ProposalInfos) ByID(votingMachine common.Address, proposalID common.Hash) (*governance.ProposalInfo, error) {
	var info *governance.ProposalInfo
	err := transaction.View(pi.db, func(tx *transaction.Tx) error {
		var err error
		info, err = pi.ByIDTx(votingMachine, proposalID)(tx)
		return err
	})
	return info, err
}
