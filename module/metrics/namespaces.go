package metrics

// Prometheus metric namespaces
const (
	namespaceGovernance = "governance"
	namespaceStorage    = "storage"
)

// Governance subsystems represent components of the vote-in-organization scheme
const (
	subsystemProposals = "proposals"
	subsystemRelay     = "relay"
)

// Storage subsystems represent the various components of the storage layer.
const (
	subsystemBadger = "badger"
	subsystemCache  = "cache"
)
