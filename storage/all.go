package storage

// All includes all the storage modules
type All struct {
	VoteProposals VoteProposals
	ProposalInfos ProposalInfos
	Events        Events
}
