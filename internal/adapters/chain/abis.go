package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABI fragments for the contracts the bridge calls. Only the methods
// the bridge uses are declared.
const tokenABIJSON = `[
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burnFrom","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"SUPPLY_CAP","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

const stakingABIJSON = `[
  {"type":"function","name":"stake","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"},{"name":"lockPeriod","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"unstake","stateMutability":"nonpayable","inputs":[{"name":"stakeId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"getStake","stateMutability":"view","inputs":[{"name":"staker","type":"address"},{"name":"stakeId","type":"uint256"}],"outputs":[{"name":"amount","type":"uint256"},{"name":"lockPeriod","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"active","type":"bool"}]}
]`

const badgeABIJSON = `[
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"data","type":"bytes"}],"outputs":[]}
]`

const governorABIJSON = `[
  {"type":"function","name":"castVote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"castVoteWithReason","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"},{"name":"reason","type":"string"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	tokenABI    = mustABI(tokenABIJSON)
	stakingABI  = mustABI(stakingABIJSON)
	badgeABI    = mustABI(badgeABIJSON)
	governorABI = mustABI(governorABIJSON)
)

func mustABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}
