package scheme

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"pgregory.net/rapid"

	"github.com/onflow/flow-governance/governance/errors"
	"github.com/onflow/flow-governance/governance/relay"
	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/module/organization"
	badgerstorage "github.com/onflow/flow-governance/storage/badger"
	"github.com/onflow/flow-governance/utils/unittest"
	"github.com/onflow/flow-governance/utils/unittest/mocks"
)

type modelProposal struct {
	original *mocks.VotingMachine
	live     bool
}

// TestProposalLifecycleProperties runs random sequences of proposals and
// executions against a reference model of the proposal lifecycle.
func TestProposalLifecycleProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		db, err := badgerstorage.Open(badgerstorage.DefaultConfig())
		if err != nil {
			t.Fatalf("could not open db: %v", err)
		}
		defer db.Close()

		ctx := context.Background()
		storages := badgerstorage.InitAll(metrics.NewNoopCollector(), db, badgerstorage.DefaultCacheSize)
		org := organization.NewController(unittest.Logger(), common.HexToAddress("0x0a"))
		local := mocks.NewVotingMachine(common.HexToAddress("0x0b"), 0, 2)
		stranger := common.HexToAddress("0x0c")
		unknownID := common.HexToHash("0xdead")

		refuse := false
		originals := []*mocks.VotingMachine{
			mocks.NewVotingMachine(common.HexToAddress("0x01"), 0, 1),
			mocks.NewVotingMachine(common.HexToAddress("0x02"), 1, 3),
		}
		for _, vm := range originals {
			vm.OnVote = func(context.Context, mocks.Vote) error {
				if refuse {
					return fmt.Errorf("vote refused")
				}
				return nil
			}
			err = org.Register(vm.Address(), relay.NewVotingMachineCallee(vm))
			if err != nil {
				t.Fatalf("could not register voting machine: %v", err)
			}
		}

		scheme := New(unittest.Logger(), db, storages, mocks.NewHeights(1), common.HexToAddress("0x0d"))
		if err := scheme.Initialize(org, local, common.Hash{}); err != nil {
			t.Fatalf("could not initialize: %v", err)
		}

		proposals := make(map[common.Hash]*modelProposal)
		var ids []common.Hash
		votes := make(map[common.Address]int)

		t.Repeat(map[string]func(*rapid.T){
			"propose": func(t *rapid.T) {
				original := rapid.SampledFrom(originals).Draw(t, "original")
				numOfChoices := rapid.Uint64Range(0, 3).Draw(t, "numOfChoices")
				option := rapid.Uint64Range(0, 4).Draw(t, "option")

				originalProposalID, err := original.Propose(ctx, numOfChoices, common.Hash{}, stranger, stranger)
				if err != nil {
					t.Fatalf("could not open original proposal: %v", err)
				}
				minVote, maxVote, _ := original.GetAllowedRangeOfChoices(ctx)
				valid := minVote <= option && option <= maxVote && option <= numOfChoices

				proposalID, err := scheme.ProposeVote(ctx, stranger, original, originalProposalID, option, "")
				if !valid {
					if !errors.IsInvalidVoteRangeError(err) {
						t.Fatalf("expected invalid vote range for option %d in [%d, %d] with %d choices, got %v", option, minVote, maxVote, numOfChoices, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if _, ok := proposals[proposalID]; ok {
					t.Fatalf("proposal id %s created twice", proposalID.Hex())
				}
				proposals[proposalID] = &modelProposal{original: original, live: true}
				ids = append(ids, proposalID)
			},
			"execute": func(t *rapid.T) {
				proposalID := unknownID
				if len(ids) > 0 && rapid.Bool().Draw(t, "known") {
					proposalID = rapid.SampledFrom(ids).Draw(t, "proposalID")
				}
				caller := rapid.SampledFrom([]common.Address{local.Address(), stranger}).Draw(t, "caller")
				decision := rapid.SampledFrom([]int64{1, 2, 0, -3}).Draw(t, "decision")
				refuse = rapid.Bool().Draw(t, "refuse")

				_, err := scheme.ExecuteProposal(ctx, caller, proposalID, decision)

				p, known := proposals[proposalID]
				switch {
				case caller != local.Address() || !known:
					if !errors.IsUnauthorizedError(err) {
						t.Fatalf("expected unauthorized, got %v", err)
					}
				case !p.live:
					if !errors.IsUnknownProposalError(err) {
						t.Fatalf("expected unknown proposal, got %v", err)
					}
				case decision == DecisionYes && refuse:
					if !errors.IsRelayCallFailedError(err) {
						t.Fatalf("expected relay failure, got %v", err)
					}
				default:
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					p.live = false
					if decision == DecisionYes {
						votes[p.original.Address()]++
					}
				}
			},
			"": func(t *rapid.T) {
				pending, err := scheme.PendingProposals(ctx)
				if err != nil {
					t.Fatalf("could not list pending proposals: %v", err)
				}
				live := 0
				for _, p := range proposals {
					if p.live {
						live++
					}
				}
				if len(pending) != live {
					t.Fatalf("expected %d pending proposals, got %d", live, len(pending))
				}
				for _, id := range pending {
					p, ok := proposals[id]
					if !ok || !p.live {
						t.Fatalf("proposal %s pending but not live in model", id.Hex())
					}
					if _, err := storages.ProposalInfos.ByID(local.Address(), id); err != nil {
						t.Fatalf("live proposal %s has no authorization record: %v", id.Hex(), err)
					}
				}
				for _, vm := range originals {
					if len(vm.Votes()) != votes[vm.Address()] {
						t.Fatalf("expected %d votes on %s, got %d", votes[vm.Address()], vm.Address().Hex(), len(vm.Votes()))
					}
				}
			},
		})
	})
}
