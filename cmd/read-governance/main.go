package main

import (
	"github.com/onflow/flow-governance/cmd/util/cmd/read-governance/cmd"
)

func main() {
	cmd.Execute()
}
