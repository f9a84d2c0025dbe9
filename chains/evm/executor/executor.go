// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package executor sends taker transactions: self executed settlements and token approvals.
package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/bebop-dex/go-sdk/chains/evm/calls/consts"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

const (
	GAS_LIMIT_MULTIPLIER = 4
	RECEIPT_ATTEMPTS     = 20
	RECEIPT_INTERVAL     = 500 * time.Millisecond
	APPROVAL_TIMEOUT     = 2 * time.Minute
)

var (
	ErrTxReverted = errors.New("transaction reverted")
	ErrSignTx     = errors.New("failed to sign transaction")
)

// ChainClient is the subset of the RPC client used to send transactions.
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type TxSigner interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

type Executor struct {
	client          ChainClient
	signer          TxSigner
	receiptInterval time.Duration
}

func NewExecutor(client ChainClient, signer TxSigner, receiptInterval time.Duration) *Executor {
	if receiptInterval <= 0 {
		receiptInterval = RECEIPT_INTERVAL
	}

	return &Executor{
		client:          client,
		signer:          signer,
		receiptInterval: receiptInterval,
	}
}

func (e *Executor) Address() common.Address {
	return e.signer.Address()
}

// Send signs and broadcasts the settlement transaction of a quote. The nonce is the
// pending nonce of the taker, the gas price is bumped by half and the quoted gas
// limit is multiplied by four.
func (e *Executor) Send(ctx context.Context, txData *protocol.TxData) (common.Hash, error) {
	to, err := txData.ToAddress()
	if err != nil {
		return common.Hash{}, err
	}
	value, err := txData.ValueInt()
	if err != nil {
		return common.Hash{}, err
	}
	data, err := hexutil.Decode(txData.Data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid tx data: %w", err)
	}

	gasPrice, err := e.gasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	gas := txData.Gas
	if gas == 0 {
		gas, err = e.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  e.signer.Address(),
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	return e.send(ctx, to, value, data, gas*GAS_LIMIT_MULTIPLIER, gasPrice)
}

// Receipt returns the transaction receipt or nil if the transaction is not mined yet.
func (e *Executor) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := e.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// Approve sets the ERC20 allowance of spender and waits for the approval to be mined.
func (e *Executor) Approve(ctx context.Context, token common.Address, spender common.Address, amount *big.Int) (common.Hash, error) {
	data, err := consts.ERC20ABI.Pack("approve", spender, amount)
	if err != nil {
		return common.Hash{}, err
	}

	gasPrice, err := e.gasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	gas, err := e.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     e.signer.Address(),
		To:       &token,
		GasPrice: gasPrice,
		Value:    big.NewInt(0),
		Data:     data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
	}

	hash, err := e.send(ctx, token, big.NewInt(0), data, gas, gasPrice)
	if err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, APPROVAL_TIMEOUT)
	defer cancel()
	receipt, err := e.WaitMined(ctx, hash)
	if err != nil {
		return hash, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return hash, fmt.Errorf("%w: %s", ErrTxReverted, hash.Hex())
	}

	log.Info().Msgf("Approved %s of token %s for spender %s", amount, token.Hex(), spender.Hex())
	return hash, nil
}

// Revoke sets the allowance of spender to zero.
func (e *Executor) Revoke(ctx context.Context, token common.Address, spender common.Address) (common.Hash, error) {
	return e.Approve(ctx, token, spender, big.NewInt(0))
}

// Allowance reads the current ERC20 allowance of the taker for spender.
func (e *Executor) Allowance(ctx context.Context, token common.Address, spender common.Address) (*big.Int, error) {
	data, err := consts.ERC20ABI.Pack("allowance", e.signer.Address(), spender)
	if err != nil {
		return nil, err
	}

	res, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	out, err := consts.ERC20ABI.Unpack("allowance", res)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// WaitMined blocks until the transaction is mined or the context is done.
func (e *Executor) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := e.Receipt(ctx, hash)
		if err != nil {
			log.Warn().Msgf("Error fetching transaction receipt: %v", err)
		}
		if receipt != nil {
			return receipt, nil
		}

		timer := time.NewTimer(e.receiptInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("timed out waiting for transaction %s: %w", hash.Hex(), ctx.Err())
		case <-timer.C:
		}
	}
}

func (e *Executor) gasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := e.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}

	return new(big.Int).Div(new(big.Int).Mul(gasPrice, big.NewInt(3)), big.NewInt(2)), nil
}

func (e *Executor) send(
	ctx context.Context,
	to common.Address,
	value *big.Int,
	data []byte,
	gas uint64,
	gasPrice *big.Int,
) (common.Hash, error) {
	chainID, err := e.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch chain id: %w", err)
	}
	nonce, err := e.client.PendingNonceAt(ctx, e.signer.Address())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := e.signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", ErrSignTx, err)
	}

	err = e.client.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	log.Debug().Msgf("Sent transaction %s with nonce %d", signed.Hash().Hex(), nonce)
	return signed.Hash(), nil
}
