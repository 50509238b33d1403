package module

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// GovernanceMetrics tracks the lifecycle of vote proposals.
type GovernanceMetrics interface {
	// ProposalCreated is called after a vote proposal was committed.
	ProposalCreated()

	// ProposalExecuted is called after an execution was committed. relayed
	// reports whether the vote was delivered to the original voting machine.
	ProposalExecuted(relayed bool)

	// ProposalRejected counts calls that failed with the given error kind,
	// e.g. "invalid_vote_range" or "unauthorized".
	ProposalRejected(reason string)

	// RelayCallFailed counts relayed vote calls that did not succeed.
	RelayCallFailed()
}
