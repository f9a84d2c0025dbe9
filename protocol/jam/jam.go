// Package jam implements the solver based JAM protocol line of the Bebop API.
package jam

import (
	"fmt"
	"time"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/common"
)

const (
	PROTOCOL_NAME = "jam"

	QUOTE_PATH        = "/jam/%s/v2/quote"
	ORDER_PATH        = "/jam/%s/v2/order"
	ORDER_STATUS_PATH = "/jam/%s/v2/order-status"

	POLL_ATTEMPTS = 10
	POLL_INTERVAL = time.Second
)

var (
	SETTLEMENT_ADDRESS      = common.HexToAddress("0xbeb0b0623f66bE8cE162EbDfA2ec543A522F4ea6")
	BALANCE_MANAGER_ADDRESS = common.HexToAddress("0xC5a350853E4e36b73EB0C24aaA4b8816C9A3579a")

	// Settlement is the JamSettlement signing domain. zkSync runs its own deployment.
	Settlement = signature.Protocol{
		Name:            "JamSettlement",
		Version:         "1",
		DefaultContract: SETTLEMENT_ADDRESS,
		Contracts: map[uint64]common.Address{
			324: common.HexToAddress("0xB2Ef53BE5b9E7DF7754C3B9fa8218A6F7935389F"),
		},
	}

	balanceManagers = map[uint64]common.Address{
		324: common.HexToAddress("0xC4E18a890c2539a4367578006D695d39D3F15f85"),
	}
)

// BalanceManager returns the contract takers approve their sell tokens to.
func BalanceManager(chainID uint64) common.Address {
	if m, ok := balanceManagers[chainID]; ok {
		return m
	}
	return BALANCE_MANAGER_ADDRESS
}

func Endpoints(chainName string) protocol.Endpoints {
	return protocol.Endpoints{
		Quote:       fmt.Sprintf(QUOTE_PATH, chainName),
		Order:       fmt.Sprintf(ORDER_PATH, chainName),
		OrderStatus: fmt.Sprintf(ORDER_STATUS_PATH, chainName),
	}
}
