package jam_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/chains/evm/signer"
	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	mock_jam "github.com/bebop-dex/go-sdk/protocol/jam/mock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
)

// freshQuote moves the expiry of a recorded quote into the future.
func freshQuote(body string) string {
	raw := make(map[string]interface{})
	_ = json.Unmarshal([]byte(body), &raw)
	raw["expiry"] = time.Now().Add(time.Minute).Unix()
	fresh, _ := json.Marshal(raw)
	return string(fresh)
}

type stubExecutor struct {
	spender common.Address
	amount  *big.Int
	tx      *protocol.TxData
}

func (e *stubExecutor) Send(ctx context.Context, tx *protocol.TxData) (common.Hash, error) {
	e.tx = tx
	return common.HexToHash("0x01"), nil
}

func (e *stubExecutor) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
}

func (e *stubExecutor) Approve(ctx context.Context, token common.Address, spender common.Address, amount *big.Int) (common.Hash, error) {
	e.spender = spender
	e.amount = amount
	return common.HexToHash("0x02"), nil
}

func (e *stubExecutor) Revoke(ctx context.Context, token common.Address, spender common.Address) (common.Hash, error) {
	return e.Approve(ctx, token, spender, big.NewInt(0))
}

type ClientTestSuite struct {
	suite.Suite

	api      *jam.API
	signer   *signer.KeySigner
	executor *stubExecutor
	client   *jam.Client
}

func TestRunClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	api, err := protocol.NewAPI(protocol.ENV_PROD, nil, "")
	s.Nil(err)
	chain, err := config.ChainByID(42161)
	s.Nil(err)
	s.api = jam.NewAPI(api, chain, jam.SchemaV2)

	s.signer, err = signer.NewKeySigner(testKey)
	s.Nil(err)
	s.executor = &stubExecutor{}

	s.client, err = jam.NewClient(s.api, jam.ClientConfig{
		Taker:    s.signer,
		Executor: s.executor,
		Lifecycle: lifecycle.Config{
			StatusPolicy:  lifecycle.Policy{Attempts: 10, Interval: time.Millisecond},
			ReceiptPolicy: lifecycle.Policy{Attempts: 3, Interval: time.Millisecond},
		},
	})
	s.Nil(err)
}

func (s *ClientTestSuite) Test_GetQuote_DefaultsTakerToSigner() {
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		s.Equal(s.signer.Address().Hex(), req.URL.Query().Get("taker_address"))
		return response(http.StatusOK, mock_jam.JamQuoteResponse), nil
	})

	req := jam.NewQuoteRequest([]string{usdt}, []string{weth})
	req.SellAmounts = []*big.Int{big.NewInt(10000000)}

	_, err := s.client.GetQuote(context.Background(), req)

	s.Nil(err)
}

func (s *ClientTestSuite) Test_SendGaslessOrder_Confirmed() {
	statusCalls := 0
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/jam/arbitrum/v2/quote":
			s.Equal("true", req.URL.Query().Get("gasless"))
			return response(http.StatusOK, freshQuote(mock_jam.JamQuoteResponse)), nil
		case "/jam/arbitrum/v2/order":
			body, _ := io.ReadAll(req.Body)
			order := new(protocol.OrderRequest)
			s.Nil(json.Unmarshal(body, order))
			s.Equal("4d5f0d3c-7ab2-4c48-8d6e-5c1fa2b2e0a1", order.QuoteID)
			s.Equal(protocol.SIGN_SCHEME_EIP712, order.SignScheme)
			s.verifySignature(order.Signature)
			return response(http.StatusOK, `{"status":"Success","expiry":1760110167}`), nil
		case "/jam/arbitrum/v2/order-status":
			statusCalls++
			if statusCalls < 3 {
				return response(http.StatusOK, `{"status":"Pending"}`), nil
			}
			return response(http.StatusOK, `{"status":"Confirmed","txHash":"0xabc"}`), nil
		default:
			return nil, fmt.Errorf("unexpected path %s", req.URL.Path)
		}
	})

	req := jam.NewQuoteRequest([]string{usdt}, []string{weth})
	req.SellAmounts = []*big.Int{big.NewInt(10000000)}

	result, err := s.client.SendGaslessOrder(context.Background(), req)

	s.Nil(err)
	s.Equal(lifecycle.StateConfirmed, result.State)
	s.Equal(3, result.Polls)
	s.Equal("0xabc", result.TxHash)
	s.Equal(uint64(42161), result.ChainID)
	s.Equal(jam.PROTOCOL_NAME, result.Protocol)
	s.True(s.client.Controller().Submitted("4d5f0d3c-7ab2-4c48-8d6e-5c1fa2b2e0a1"))
}

func (s *ClientTestSuite) verifySignature(sig string) {
	q := new(jam.Quote)
	s.Nil(json.Unmarshal([]byte(mock_jam.JamQuoteResponse), q))
	q.Version = jam.SchemaV2
	td, err := q.TypedData()
	s.Nil(err)

	sigBytes, err := hexutil.Decode(sig)
	s.Nil(err)
	valid, err := signature.VerifySignature(td, sigBytes, s.signer.Address())
	s.Nil(err)
	s.True(valid)
}

func (s *ClientTestSuite) Test_SendGaslessOrder_ExpiredQuote() {
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusOK, mock_jam.JamQuoteResponse), nil
	})

	req := jam.NewQuoteRequest([]string{usdt}, []string{weth})
	req.SellAmounts = []*big.Int{big.NewInt(10000000)}

	_, err := s.client.SendGaslessOrder(context.Background(), req)

	s.True(errors.Is(err, lifecycle.ErrQuoteExpired))
}

func (s *ClientTestSuite) Test_SendTakerOrder() {
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		s.Equal("false", req.URL.Query().Get("gasless"))

		raw := make(map[string]interface{})
		_ = json.Unmarshal([]byte(freshQuote(mock_jam.JamQuoteResponse)), &raw)
		raw["tx"] = map[string]interface{}{
			"to":    jam.SETTLEMENT_ADDRESS.Hex(),
			"value": "0",
			"data":  "0x1234",
			"gas":   250000,
		}
		body, _ := json.Marshal(raw)
		return response(http.StatusOK, string(body)), nil
	})

	req := jam.NewQuoteRequest([]string{usdt}, []string{weth})
	req.SellAmounts = []*big.Int{big.NewInt(10000000)}

	result, err := s.client.SendTakerOrder(context.Background(), req)

	s.Nil(err)
	s.Equal(lifecycle.StateConfirmed, result.State)
	s.Equal("0x1234", s.executor.tx.Data)
	s.Equal(uint64(250000), s.executor.tx.Gas)
}

func (s *ClientTestSuite) Test_ApproveToken_UsesBalanceManager() {
	_, err := s.client.ApproveToken(context.Background(), common.HexToAddress(usdt), big.NewInt(100))

	s.Nil(err)
	s.Equal(jam.BALANCE_MANAGER_ADDRESS, s.executor.spender)
	s.Equal(big.NewInt(100), s.executor.amount)
}

func (s *ClientTestSuite) Test_RevokeToken() {
	_, err := s.client.RevokeToken(context.Background(), common.HexToAddress(usdt))

	s.Nil(err)
	s.Equal(big.NewInt(0), s.executor.amount)
}

func (s *ClientTestSuite) Test_WithoutSigner() {
	client, err := jam.NewClient(s.api, jam.ClientConfig{})
	s.Nil(err)

	_, err = client.SendGaslessOrder(context.Background(), jam.NewQuoteRequest([]string{usdt}, []string{weth}))
	s.True(errors.Is(err, lifecycle.ErrNoSigner))

	_, err = client.ApproveToken(context.Background(), common.HexToAddress(usdt), big.NewInt(1))
	s.True(errors.Is(err, lifecycle.ErrNoExecutor))
}
