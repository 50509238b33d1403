package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
	"github.com/onflow/flow-governance/model/governance"
)

var flagProposalID string

func init() {
	rootCmd.AddCommand(proposalsCmd)

	proposalsCmd.Flags().StringVarP(&flagProposalID, "id", "i", "", "the identifier of the proposal")
}

var proposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "get a live vote proposal by ID, or list all live proposal IDs",
	Run: func(cmd *cobra.Command, args []string) {
		db, storages := InitStorages()
		defer db.Close()

		if flagProposalID != "" {
			proposalID, err := governance.HexToProposalID(flagProposalID)
			if err != nil {
				log.Fatal().Err(err).Msg("malformed proposal identifier")
			}

			log.Info().Msgf("getting vote proposal by id: %v", proposalID.Hex())
			proposal, err := storages.VoteProposals.ByID(proposalID)
			if err != nil {
				log.Fatal().Err(err).Msg("could not get vote proposal")
			}

			common.PrettyPrintEntity(proposal)
			return
		}

		proposalIDs, err := storages.VoteProposals.PendingIDs()
		if err != nil {
			log.Fatal().Err(err).Msg("could not list vote proposals")
		}
		log.Info().Msgf("found %d live vote proposals", len(proposalIDs))
		common.PrettyPrintEntity(proposalIDs)
	},
}
