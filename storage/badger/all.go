package badger

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-governance/module"
	"github.com/onflow/flow-governance/storage"
)

func InitAll(metrics module.CacheMetrics, db *badger.DB, cacheSize uint) *storage.All {
	voteProposals := NewVoteProposals(db)
	proposalInfos := NewProposalInfos(metrics, db, cacheSize)
	events := NewEvents(db)

	return &storage.All{
		VoteProposals: voteProposals,
		ProposalInfos: proposalInfos,
		Events:        events,
	}
}
