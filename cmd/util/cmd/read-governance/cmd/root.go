package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
)

const envPrefix = "GOVERNANCE"

var rootCmd = &cobra.Command{
	Use:   "read-governance",
	Short: "read governance scheme storage",
}

var RootCmd = rootCmd

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	common.InitStorageFlags(rootCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
