package token

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bebop-dex/go-sdk/app"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	"github.com/bebop-dex/go-sdk/protocol/pmm"
)

const MAX_AMOUNT = "max"

var (
	ApproveCMD = &cobra.Command{
		Use:   "approve",
		Short: "Approve a token for the protocol",
		Long:  "Approves the JAM balance manager or the PMM settlement contract to spend a token of the taker",
		RunE:  approve,
	}
	RevokeCMD = &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a token approval",
		RunE:  revoke,
	}
)

var (
	protocolName string
	token        string
	amount       string
)

func init() {
	for _, cmd := range []*cobra.Command{ApproveCMD, RevokeCMD} {
		cmd.Flags().StringVar(&protocolName, "protocol", jam.PROTOCOL_NAME, "Protocol line, jam or pmm")
		cmd.Flags().StringVar(&token, "token", "", "Token address or symbol")
		_ = cmd.MarkFlagRequired("token")
	}
	ApproveCMD.Flags().StringVar(&amount, "amount", MAX_AMOUNT, "Amount in base units or 'max'")
}

type approver interface {
	ApproveToken(ctx context.Context, token common.Address, amount *big.Int) (common.Hash, error)
	RevokeToken(ctx context.Context, token common.Address) (common.Hash, error)
}

// ParseAmount parses an approval amount, where max is the largest uint256.
func ParseAmount(amount string) (*big.Int, error) {
	if amount == MAX_AMOUNT {
		return new(big.Int).Set(math.MaxBig256), nil
	}

	v, ok := new(big.Int).SetString(amount, 10)
	if !ok || v.Sign() < 0 || v.Cmp(math.MaxBig256) > 0 {
		return nil, fmt.Errorf("invalid amount %s", amount)
	}
	return v, nil
}

func setup(cmd *cobra.Command) (*app.SDK, approver, common.Address, error) {
	c, err := app.LoadConfig()
	if err != nil {
		return nil, nil, common.Address{}, err
	}
	sdk, err := app.NewSDK(cmd.Context(), c, nil)
	if err != nil {
		return nil, nil, common.Address{}, err
	}
	if sdk.Executor == nil {
		return nil, nil, common.Address{}, lifecycle.ErrNoExecutor
	}

	address, err := sdk.Chain.ResolveToken(token)
	if err != nil {
		return nil, nil, common.Address{}, err
	}

	switch protocolName {
	case jam.PROTOCOL_NAME:
		return sdk, sdk.Jam, common.HexToAddress(address), nil
	case pmm.PROTOCOL_NAME:
		if sdk.PMM == nil {
			return nil, nil, common.Address{}, fmt.Errorf("%w: %s", pmm.ErrUnsupportedChain, sdk.Chain.Name)
		}
		return sdk, sdk.PMM, common.HexToAddress(address), nil
	default:
		return nil, nil, common.Address{}, fmt.Errorf("unknown protocol %s", protocolName)
	}
}

func approve(cmd *cobra.Command, args []string) error {
	value, err := ParseAmount(amount)
	if err != nil {
		return err
	}
	sdk, a, tokenAddress, err := setup(cmd)
	if err != nil {
		return err
	}

	hash, err := a.ApproveToken(cmd.Context(), tokenAddress, value)
	if err != nil {
		return err
	}

	log.Info().Msgf("Approved %s for %s: %s", tokenAddress.Hex(), protocolName, sdk.Chain.TxLink(hash.Hex()))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())
	return err
}

func revoke(cmd *cobra.Command, args []string) error {
	sdk, a, tokenAddress, err := setup(cmd)
	if err != nil {
		return err
	}

	hash, err := a.RevokeToken(cmd.Context(), tokenAddress)
	if err != nil {
		return err
	}

	log.Info().Msgf("Revoked %s for %s: %s", tokenAddress.Hex(), protocolName, sdk.Chain.TxLink(hash.Hex()))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())
	return err
}
