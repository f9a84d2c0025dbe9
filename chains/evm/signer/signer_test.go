package signer_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/chains/evm/signer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/suite"
)

// well known hardhat account #0
const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

type testOrder struct{}

func (o testOrder) Schema() signature.Schema {
	return signature.Schema{
		Name:   "Ping",
		Fields: []apitypes.Type{{Name: "value", Type: "uint256"}},
	}
}

func (o testOrder) Message() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{"value": big.NewInt(7)}
}

type KeySignerTestSuite struct {
	suite.Suite

	signer *signer.KeySigner
}

func TestRunKeySignerTestSuite(t *testing.T) {
	suite.Run(t, new(KeySignerTestSuite))
}

func (s *KeySignerTestSuite) SetupTest() {
	ks, err := signer.NewKeySigner(testKey)
	s.Nil(err)
	s.signer = ks
}

func (s *KeySignerTestSuite) Test_Address() {
	s.Equal(common.HexToAddress(testAddress), s.signer.Address())

	withoutPrefix, err := signer.NewKeySigner(testKey[2:])
	s.Nil(err)
	s.Equal(s.signer.Address(), withoutPrefix.Address())
}

func (s *KeySignerTestSuite) Test_InvalidKey() {
	_, err := signer.NewKeySigner("0x1234")
	s.NotNil(err)

	_, err = signer.NewKeySigner("not a key")
	s.NotNil(err)
}

func (s *KeySignerTestSuite) Test_SignTypedData() {
	protocol := signature.Protocol{
		Name:            "BebopSettlement",
		Version:         "2",
		DefaultContract: common.HexToAddress("0xbbbbbBB520d69a9775E85b458C58c648259FAD5F"),
	}
	td := protocol.Assemble(1, testOrder{})

	sig, err := s.signer.SignTypedData(context.Background(), td)

	s.Nil(err)
	s.Len(sig, crypto.SignatureLength)
	s.True(sig[crypto.RecoveryIDOffset] == 27 || sig[crypto.RecoveryIDOffset] == 28)

	valid, err := signature.VerifySignature(td, sig, s.signer.Address())
	s.Nil(err)
	s.True(valid)
}

func (s *KeySignerTestSuite) Test_SignTx() {
	chainID := big.NewInt(42161)
	to := common.HexToAddress("0xbeb0b0623f66bE8cE162EbDfA2ec543A522F4ea6")
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    3,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      21000,
		GasPrice: big.NewInt(1000),
	})

	signed, err := s.signer.SignTx(tx, chainID)
	s.Nil(err)

	from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	s.Nil(err)
	s.Equal(s.signer.Address(), from)
}
