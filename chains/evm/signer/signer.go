// Package signer provides a local private key signer for typed-data orders and
// settlement transactions.
package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// KeySigner keeps the private key sealed in a memguard enclave and only opens it
// for the duration of one signature.
type KeySigner struct {
	enclave *memguard.Enclave
	address common.Address
}

// NewKeySigner parses a hex encoded private key, with or without the 0x prefix.
func NewKeySigner(privateKey string) (*KeySigner, error) {
	keyBytes, err := hexutil.Decode("0x" + strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	key, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		memguard.WipeBytes(keyBytes)
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeySigner{
		address: crypto.PubkeyToAddress(key.PublicKey),
		enclave: memguard.NewEnclave(keyBytes),
	}, nil
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignTypedData signs the typed-data digest and returns r || s || v with v in {27, 28}.
func (s *KeySigner) SignTypedData(ctx context.Context, typedData apitypes.TypedData) ([]byte, error) {
	digest, err := signature.Digest(typedData)
	if err != nil {
		return nil, err
	}

	var sig []byte
	err = s.withKey(func(key *ecdsa.PrivateKey) error {
		sig, err = crypto.Sign(digest, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// SignTx signs the transaction with the latest signer of the chain.
func (s *KeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	var signed *types.Transaction
	err := s.withKey(func(key *ecdsa.PrivateKey) error {
		var err error
		signed, err = types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
		return err
	})
	return signed, err
}

func (s *KeySigner) withKey(fn func(key *ecdsa.PrivateKey) error) error {
	buf, err := s.enclave.Open()
	if err != nil {
		return fmt.Errorf("open enclave: %w", err)
	}

	key, err := crypto.ToECDSA(buf.Bytes())
	buf.Destroy()
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}

	return fn(key)
}
