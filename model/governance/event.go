package governance

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// List of events emitted by the vote-in-organization scheme.
const (
	EventNewVoteProposal  EventType = "NewVoteProposal"
	EventProposalExecuted EventType = "ProposalExecuted"
	EventProposalDeleted  EventType = "ProposalDeleted"
)

type EventType string

// NewVoteProposal is emitted when a vote delegation is proposed.
type NewVoteProposal struct {
	Organization          common.Address
	ProposalID            common.Hash
	VotingMachine         common.Address
	OriginalVotingMachine common.Address
	OriginalProposalID    common.Hash
	ChosenOption          uint64
	DescriptionHash       string
}

// ProposalExecuted is emitted once the voting machine decided on a proposal.
// ReturnData holds the raw return bytes of the relayed vote call and is empty
// when no call was made.
type ProposalExecuted struct {
	Organization common.Address
	ProposalID   common.Hash
	Decision     int64
	ReturnData   []byte
}

// ProposalDeleted is emitted when a proposal record is removed.
type ProposalDeleted struct {
	Organization common.Address
	ProposalID   common.Hash
}

// Event is the persisted form of a scheme event. Exactly one of the payload
// fields is set, matching Type.
type Event struct {
	// Type is the event type.
	Type EventType
	// Index defines the global emission order of events.
	// The first event emitted has index 0, the second has index 1, and so on.
	Index uint64
	// ProposalID is the local proposal the event refers to.
	ProposalID common.Hash

	NewVoteProposal  *NewVoteProposal
	ProposalExecuted *ProposalExecuted
	ProposalDeleted  *ProposalDeleted
}

func NewVoteProposalEvent(e *NewVoteProposal) *Event {
	return &Event{Type: EventNewVoteProposal, ProposalID: e.ProposalID, NewVoteProposal: e}
}

func ProposalExecutedEvent(e *ProposalExecuted) *Event {
	return &Event{Type: EventProposalExecuted, ProposalID: e.ProposalID, ProposalExecuted: e}
}

func ProposalDeletedEvent(e *ProposalDeleted) *Event {
	return &Event{Type: EventProposalDeleted, ProposalID: e.ProposalID, ProposalDeleted: e}
}

// String returns the string representation of this event.
func (e Event) String() string {
	return fmt.Sprintf("%d %s: %s", e.Index, e.Type, e.ProposalID.Hex())
}

type EventsList []Event

// ByType returns the events of the given type, preserving order.
func (el EventsList) ByType(t EventType) EventsList {
	var filtered EventsList
	for _, event := range el {
		if event.Type == t {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
