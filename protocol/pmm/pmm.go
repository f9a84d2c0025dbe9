// Package pmm implements the market maker (PMM) protocol line of the Bebop API.
package pmm

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/common"
)

const (
	PROTOCOL_NAME = "pmm"

	QUOTE_PATH        = "/pmm/%s/v3/quote"
	ORDER_PATH        = "/pmm/%s/v3/order"
	ORDER_STATUS_PATH = "/pmm/%s/v3/order-status"

	POLL_ATTEMPTS = 20
	POLL_INTERVAL = 500 * time.Millisecond
)

var (
	SETTLEMENT_ADDRESS = common.HexToAddress("0xbbbbbBB520d69a9775E85b458C58c648259FAD5F")

	// Settlement is the BebopSettlement signing domain, deployed at the same address on every chain.
	Settlement = signature.Protocol{
		Name:            "BebopSettlement",
		Version:         "2",
		DefaultContract: SETTLEMENT_ADDRESS,
	}

	SUPPORTED_CHAINS = []string{"ethereum", "polygon", "arbitrum", "blast", "optimism"}

	ErrUnsupportedChain = errors.New("chain not supported by pmm")
)

func Supported(chainName string) bool {
	return slices.Contains(SUPPORTED_CHAINS, chainName)
}

func Endpoints(chainName string) protocol.Endpoints {
	return protocol.Endpoints{
		Quote:       fmt.Sprintf(QUOTE_PATH, chainName),
		Order:       fmt.Sprintf(ORDER_PATH, chainName),
		OrderStatus: fmt.Sprintf(ORDER_STATUS_PATH, chainName),
	}
}
