package relay

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const methodVote = "vote"

// votingMachineABI describes the voting machine entrypoint that relayed votes
// are delivered to.
const votingMachineABI = `
[
	{
		"type": "function",
		"name": "vote",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_proposalId", "type": "bytes32"},
			{"name": "_vote", "type": "uint256"},
			{"name": "_amount", "type": "uint256"},
			{"name": "_voter", "type": "address"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	}
]
`

var votingMachine = mustParseABI(votingMachineABI)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid voting machine ABI: %v", err))
	}
	return parsed
}

// Vote is the decoded form of a relayed vote call.
type Vote struct {
	ProposalID common.Hash
	Option     uint64
	Amount     *big.Int
	Voter      common.Address
}

// EncodeVote packs a vote call, including its 4-byte method selector. A nil
// amount is encoded as zero.
func EncodeVote(proposalID common.Hash, option uint64, amount *big.Int, voter common.Address) ([]byte, error) {
	if amount == nil {
		amount = big.NewInt(0)
	}
	data, err := votingMachine.Pack(methodVote, proposalID, new(big.Int).SetUint64(option), amount, voter)
	if err != nil {
		return nil, fmt.Errorf("could not encode vote: %w", err)
	}
	return data, nil
}

// DecodeVote unpacks call data produced by EncodeVote.
func DecodeVote(data []byte) (*Vote, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("call data too short: %d bytes", len(data))
	}
	method, err := votingMachine.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("unknown method selector %x: %w", data[:4], err)
	}
	if method.Name != methodVote {
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("could not decode vote arguments: %w", err)
	}
	if len(args) != 4 {
		return nil, fmt.Errorf("unexpected number of vote arguments: %d", len(args))
	}

	proposalID, ok := args[0].([32]byte)
	if !ok {
		return nil, fmt.Errorf("invalid proposal id argument type %T", args[0])
	}
	option, ok := args[1].(*big.Int)
	if !ok || !option.IsUint64() {
		return nil, fmt.Errorf("invalid option argument %v", args[1])
	}
	amount, ok := args[2].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("invalid amount argument type %T", args[2])
	}
	voter, ok := args[3].(common.Address)
	if !ok {
		return nil, fmt.Errorf("invalid voter argument type %T", args[3])
	}

	return &Vote{
		ProposalID: proposalID,
		Option:     option.Uint64(),
		Amount:     amount,
		Voter:      voter,
	}, nil
}

// EncodeVoteResult packs the return value of a vote call.
func EncodeVoteResult(decided bool) ([]byte, error) {
	data, err := votingMachine.Methods[methodVote].Outputs.Pack(decided)
	if err != nil {
		return nil, fmt.Errorf("could not encode vote result: %w", err)
	}
	return data, nil
}

// DecodeVoteResult unpacks the return value of a vote call.
func DecodeVoteResult(data []byte) (bool, error) {
	values, err := votingMachine.Methods[methodVote].Outputs.Unpack(data)
	if err != nil {
		return false, fmt.Errorf("could not decode vote result: %w", err)
	}
	if len(values) != 1 {
		return false, fmt.Errorf("unexpected number of vote results: %d", len(values))
	}
	decided, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("invalid vote result type %T", values[0])
	}
	return decided, nil
}
