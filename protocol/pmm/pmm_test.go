package pmm_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"testing"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/chains/evm/signer"
	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/bebop-dex/go-sdk/protocol/pmm"
	mock_pmm "github.com/bebop-dex/go-sdk/protocol/pmm/mock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

type MapOrderTestSuite struct {
	suite.Suite
}

func TestRunMapOrderTestSuite(t *testing.T) {
	suite.Run(t, new(MapOrderTestSuite))
}

func (s *MapOrderTestSuite) quote(body string) *pmm.Quote {
	q := new(pmm.Quote)
	s.Nil(json.Unmarshal([]byte(body), q))
	return q
}

func (s *MapOrderTestSuite) Test_SingleOrder() {
	q := s.quote(mock_pmm.PMMSingleQuoteResponse)

	order, err := q.Order()

	s.Nil(err)
	single, ok := order.(*pmm.SingleOrder)
	s.True(ok)
	s.Equal(pmm.SingleOrderSchema, single.Schema())
	s.Equal(big.NewInt(0), single.PartnerID)
	s.Equal(big.NewInt(1760109867123), single.MakerNonce)
	s.Equal(big.NewInt(100000000), single.TakerAmount)
	s.Equal(big.NewInt(0), single.PackedCommands)
	s.Equal(common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), single.MakerToken)
	s.Equal(12, *q.PartialFillOffset)
}

func (s *MapOrderTestSuite) Test_MultiOrder() {
	q := s.quote(mock_pmm.PMMMultiQuoteResponse)

	order, err := q.Order()

	s.Nil(err)
	multi, ok := order.(*pmm.MultiOrder)
	s.True(ok)
	s.Equal([]byte{0x00, 0x00, 0x02}, multi.Commands)
	s.Equal([]*big.Int{big.NewInt(5000000), big.NewInt(5000000)}, multi.TakerAmounts)
	s.Equal(common.HexToAddress("0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"), multi.TakerTokens[1])
	s.Nil(q.PartialFillOffset)
}

func (s *MapOrderTestSuite) Test_AggregateOrder_PreservesMatrixOrder() {
	q := s.quote(mock_pmm.PMMAggregateQuoteResponse)

	order, err := q.Order()

	s.Nil(err)
	aggregate, ok := order.(*pmm.AggregateOrder)
	s.True(ok)
	s.Len(aggregate.MakerAddresses, 3)
	s.Equal([]*big.Int{big.NewInt(11), big.NewInt(12), big.NewInt(13)}, aggregate.MakerNonces)
	s.Equal([][]*big.Int{
		{big.NewInt(100), big.NewInt(200)},
		{big.NewInt(300), big.NewInt(400)},
		{big.NewInt(500), big.NewInt(600)},
	}, aggregate.TakerAmounts)
	s.Equal([][]*big.Int{
		{big.NewInt(1000), big.NewInt(2000)},
		{big.NewInt(3000), big.NewInt(4000)},
		{big.NewInt(5000), big.NewInt(6000)},
	}, aggregate.MakerAmounts)
	s.Equal(common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), aggregate.TakerTokens[1][0])
	s.Equal(common.HexToAddress("0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f"), aggregate.MakerTokens[2][0])
	s.Equal(big.NewInt(7), aggregate.PartnerID)

	msg := aggregate.Message()
	s.Equal([]string{
		"0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		"0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
	}, msg["taker_tokens"].([][]string)[1])
}

func (s *MapOrderTestSuite) Test_UnsupportedTopology() {
	q := s.quote(mock_pmm.PMMSingleQuoteResponse)
	q.OnchainOrderType = "BatchOrder"

	_, err := q.Order()

	s.True(errors.Is(err, signature.ErrUnsupportedOrderTopology))
}

func (s *MapOrderTestSuite) Test_MalformedMatrixEntry() {
	raw := json.RawMessage(`{
		"partner_id": 0, "expiry": 1, "taker_address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"maker_addresses": [], "maker_nonces": [], "taker_tokens": [], "maker_tokens": [],
		"taker_amounts": [["1", "two"]], "maker_amounts": [], "commands": "0x"
	}`)

	_, err := pmm.MapOrder(pmm.AggregateOrderType, raw)

	var malformed *signature.MalformedPayloadError
	s.True(errors.As(err, &malformed))
	s.Equal("taker_amounts[0][1]", malformed.Field)
}

func (s *MapOrderTestSuite) Test_MalformedJSON() {
	_, err := pmm.MapOrder(pmm.SingleOrderType, json.RawMessage(`{"maker_nonce": 5}`))

	s.True(errors.Is(err, signature.ErrMalformedQuotePayload))
}

func (s *MapOrderTestSuite) Test_PartnerIDOverflow() {
	raw := json.RawMessage(`{
		"partner_id": 18446744073709551616, "expiry": 1,
		"taker_address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	}`)

	_, err := pmm.MapOrder(pmm.SingleOrderType, raw)

	s.True(errors.Is(err, signature.ErrMalformedQuotePayload))
}

type QuoteTestSuite struct {
	suite.Suite

	api    *pmm.API
	signer *signer.KeySigner
}

func TestRunQuoteTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteTestSuite))
}

func (s *QuoteTestSuite) SetupTest() {
	api, err := protocol.NewAPI(protocol.ENV_PROD, nil, "")
	s.Nil(err)
	chain, err := config.ChainByID(1)
	s.Nil(err)
	s.api, err = pmm.NewAPI(api, chain)
	s.Nil(err)

	ks, err := signer.NewKeySigner(testKey)
	s.Nil(err)
	s.signer = ks
}

func (s *QuoteTestSuite) Test_NewAPI_UnsupportedChain() {
	api, err := protocol.NewAPI(protocol.ENV_PROD, nil, "")
	s.Nil(err)
	chain, err := config.ChainByID(324)
	s.Nil(err)

	_, err = pmm.NewAPI(api, chain)

	s.True(errors.Is(err, pmm.ErrUnsupportedChain))
}

func (s *QuoteTestSuite) Test_Params() {
	req := pmm.NewQuoteRequest([]string{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"}, []string{"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"})
	req.SellAmounts = []*big.Int{big.NewInt(100000000)}
	req.IncludeMakers = []string{"🐂", "🐻"}
	req.ExpiryType = pmm.ExpiryShort

	params, err := req.Params()

	s.Nil(err)
	s.Equal("🐂,🐻", params.Get("include_makers"))
	s.Equal("short", params.Get("expiry_type"))
}

func (s *QuoteTestSuite) Test_GetQuote_SignsSingleOrder() {
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		s.Equal("/pmm/ethereum/v3/quote", req.URL.Path)
		s.Equal("standard", req.URL.Query().Get("expiry_type"))
		return response(http.StatusOK, mock_pmm.PMMSingleQuoteResponse), nil
	})

	req := pmm.NewQuoteRequest([]string{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"}, []string{"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"})
	req.SellAmounts = []*big.Int{big.NewInt(100000000)}
	req.TakerAddress = s.signer.Address().Hex()

	q, err := s.api.GetQuote(context.Background(), req)
	s.Nil(err)
	s.Equal(pmm.SingleOrderType, q.OnchainOrderType)

	td, err := q.TypedData()
	s.Nil(err)
	s.Equal("SingleOrder", td.PrimaryType)
	s.Equal("BebopSettlement", td.Domain.Name)
	s.Equal("2", td.Domain.Version)
	s.Equal(pmm.SETTLEMENT_ADDRESS.Hex(), td.Domain.VerifyingContract)

	sig, err := s.signer.SignTypedData(context.Background(), td)
	s.Nil(err)
	valid, err := signature.VerifySignature(td, sig, s.signer.Address())
	s.Nil(err)
	s.True(valid)
}

func (s *QuoteTestSuite) Test_AggregateTypedData_Deterministic() {
	q := new(pmm.Quote)
	s.Nil(json.Unmarshal([]byte(mock_pmm.PMMAggregateQuoteResponse), q))

	first, err := q.TypedData()
	s.Nil(err)
	second, err := q.TypedData()
	s.Nil(err)

	d1, err := signature.Digest(first)
	s.Nil(err)
	d2, err := signature.Digest(second)
	s.Nil(err)
	s.Equal(d1, d2)
	s.Equal(uint64(42161), q.ChainID)
}

func (s *QuoteTestSuite) Test_MultiTypedData_SignAndVerify() {
	q := new(pmm.Quote)
	s.Nil(json.Unmarshal([]byte(mock_pmm.PMMMultiQuoteResponse), q))

	td, err := q.TypedData()
	s.Nil(err)
	sig, err := s.signer.SignTypedData(context.Background(), td)
	s.Nil(err)

	valid, err := signature.VerifySignature(td, sig, s.signer.Address())
	s.Nil(err)
	s.True(valid)
}

func (s *QuoteTestSuite) Test_Supported() {
	s.True(pmm.Supported("blast"))
	s.False(pmm.Supported("base"))
}
