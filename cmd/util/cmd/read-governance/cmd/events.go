package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
	"github.com/onflow/flow-governance/model/governance"
)

var flagEventProposalID string
var flagEventType string

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVarP(&flagEventProposalID, "id", "i", "", "only events of the proposal with this identifier")
	eventsCmd.Flags().StringVarP(&flagEventType, "type", "t", "", "only events of this type")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "read the event log",
	Run: func(cmd *cobra.Command, args []string) {
		db, storages := InitStorages()
		defer db.Close()

		var events governance.EventsList
		if flagEventProposalID != "" {
			proposalID, err := governance.HexToProposalID(flagEventProposalID)
			if err != nil {
				log.Fatal().Err(err).Msg("malformed proposal identifier")
			}

			log.Info().Msgf("getting events of proposal: %v", proposalID.Hex())
			events, err = storages.Events.ByProposal(proposalID)
			if err != nil {
				log.Fatal().Err(err).Msg("could not get events")
			}
		} else {
			var err error
			events, err = storages.Events.All()
			if err != nil {
				log.Fatal().Err(err).Msg("could not get events")
			}
		}

		if flagEventType != "" {
			events = events.ByType(governance.EventType(flagEventType))
		}

		log.Info().Msgf("found %d events", len(events))
		common.PrettyPrint(events)
	},
}
