package metrics

const (
	LabelResource = "resource"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
)

const (
	ResourceUndefined     = "undefined"
	ResourceProposalInfo  = "proposal_info"
	ResourceVoteProposal  = "vote_proposal"
	ResourceGovernanceLog = "governance_event"
)

const (
	OutcomeRelayed = "relayed"
	OutcomeSkipped = "skipped"
)
