package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/api/handlers"
	mock_handlers "github.com/bebop-dex/go-sdk/api/handlers/mock"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func jamQuote(id string, expiry time.Time) *jam.Quote {
	return &jam.Quote{
		QuoteResponse: protocol.QuoteResponse{QuoteID: id, ChainID: 42161, Expiry: expiry.Unix()},
	}
}

type QuoteHandlerTestSuite struct {
	suite.Suite

	mockProtocol    *mock_handlers.MockProtocol
	mockQuoteStorer *mock_handlers.MockQuoteStorer
	handler         *handlers.QuoteHandler
}

func TestRunQuoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockProtocol = mock_handlers.NewMockProtocol(ctrl)
	s.mockQuoteStorer = mock_handlers.NewMockQuoteStorer(ctrl)
	s.handler = handlers.NewQuoteHandler(handlers.Protocols{
		42161: {"jam": s.mockProtocol},
	}, s.mockQuoteStorer)
}

func (s *QuoteHandlerTestSuite) request(chainID string, protocolName string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{
		"chainId":  chainID,
		"protocol": protocolName,
	})
}

func (s *QuoteHandlerTestSuite) validBody() handlers.QuoteBody {
	return handlers.QuoteBody{
		SellTokens:  []string{"0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"},
		BuyTokens:   []string{"0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"},
		SellAmounts: []*handlers.BigInt{{Int: big.NewInt(10000000)}},
	}
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidChainID() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("invalid", "jam", s.validBody()))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_ChainNotSupported() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("1", "jam", s.validBody()))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_ProtocolNotSupported() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "pmm", s.validBody()))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader([]byte("{")))
	req = mux.SetURLVars(req, map[string]string{"chainId": "42161", "protocol": "jam"})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_MissingBuyTokens() {
	body := s.validBody()
	body.BuyTokens = nil
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", body))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) rawRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"chainId": "42161", "protocol": "jam"})
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_NullAmount() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.rawRequest(`{"sellTokens":["USDT"],"buyTokens":["WETH"],"sellAmounts":[null]}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Body.String(), "invalid amount")
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_NegativeAmount() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.rawRequest(`{"sellTokens":["USDT"],"buyTokens":["WETH"],"buyAmounts":["-5"]}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Body.String(), "invalid amount")
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidQuoteRequest() {
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, &protocol.ValidationError{Err: protocol.ErrMissingAmounts})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", s.validBody()))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_APIError() {
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, &protocol.APIError{StatusCode: http.StatusBadRequest, Message: "insufficient liquidity"})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", s.validBody()))

	s.Equal(http.StatusBadGateway, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_TransportError() {
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("connection refused"))
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", s.validBody()))

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_QuoteExpired() {
	quote := jamQuote("quote-1", time.Now().Add(-time.Second))
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quote, nil)
	s.mockQuoteStorer.EXPECT().Add(uint64(42161), "jam", quote).Return(lifecycle.ErrQuoteExpired)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", s.validBody()))

	s.Equal(http.StatusGone, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_ValidQuote() {
	quote := jamQuote("quote-1", time.Now().Add(time.Minute))
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, req protocol.QuoteRequest) (lifecycle.Quotable, error) {
		s.True(req.Gasless)
		s.Equal(big.NewInt(10000000), req.SellAmounts[0])
		s.Equal(protocol.ApprovalTypeStandard, req.ApprovalType)
		return quote, nil
	})
	s.mockQuoteStorer.EXPECT().Add(uint64(42161), "jam", quote).Return(nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", s.validBody()))

	s.Equal(http.StatusOK, recorder.Code)
	resp := make(map[string]interface{})
	s.Nil(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Equal("quote-1", resp["quoteId"])
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_NotGasless() {
	gasless := false
	body := s.validBody()
	body.Gasless = &gasless

	quote := jamQuote("quote-2", time.Now().Add(time.Minute))
	s.mockProtocol.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, req protocol.QuoteRequest) (lifecycle.Quotable, error) {
		s.False(req.Gasless)
		return quote, nil
	})
	s.mockQuoteStorer.EXPECT().Add(uint64(42161), "jam", quote).Return(nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("42161", "jam", body))

	s.Equal(http.StatusOK, recorder.Code)
}
