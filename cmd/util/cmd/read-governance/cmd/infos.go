package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
	"github.com/onflow/flow-governance/model/governance"
)

var flagVotingMachine string
var flagInfoProposalID string

func init() {
	rootCmd.AddCommand(infosCmd)

	infosCmd.Flags().StringVarP(&flagVotingMachine, "voting-machine", "v", "", "the address of the voting machine")
	_ = infosCmd.MarkFlagRequired("voting-machine")

	infosCmd.Flags().StringVarP(&flagInfoProposalID, "id", "i", "", "the identifier of the proposal")
	_ = infosCmd.MarkFlagRequired("id")
}

var infosCmd = &cobra.Command{
	Use:   "infos",
	Short: "get the authorization record of a voting machine proposal",
	Run: func(cmd *cobra.Command, args []string) {
		db, storages := InitStorages()
		defer db.Close()

		votingMachine, err := governance.HexToAddress(flagVotingMachine)
		if err != nil {
			log.Fatal().Err(err).Msg("malformed voting machine address")
		}
		proposalID, err := governance.HexToProposalID(flagInfoProposalID)
		if err != nil {
			log.Fatal().Err(err).Msg("malformed proposal identifier")
		}

		log.Info().Msgf("getting proposal info of %v on %v", proposalID.Hex(), votingMachine.Hex())
		info, err := storages.ProposalInfos.ByID(votingMachine, proposalID)
		if err != nil {
			log.Fatal().Err(err).Msg("could not get proposal info")
		}

		common.PrettyPrintEntity(info)
	},
}
