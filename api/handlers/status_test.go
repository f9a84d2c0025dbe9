package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/api/handlers"
	mock_handlers "github.com/bebop-dex/go-sdk/api/handlers/mock"
	"github.com/bebop-dex/go-sdk/cache"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusHandlerTestSuite struct {
	suite.Suite

	mockProtocol *mock_handlers.MockProtocol
	mockPMM      *mock_handlers.MockProtocol
	resultChn    chan *lifecycle.Result
	cancel       context.CancelFunc
	handler      *handlers.StatusHandler
}

func TestRunStatusHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}

func (s *StatusHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockProtocol = mock_handlers.NewMockProtocol(ctrl)
	s.mockPMM = mock_handlers.NewMockProtocol(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.resultChn = make(chan *lifecycle.Result)

	s.handler = handlers.NewStatusHandler(handlers.Protocols{
		42161: {"jam": s.mockProtocol, "pmm": s.mockPMM},
	}, cache.NewResultCache(ctx, s.resultChn))
}

func (s *StatusHandlerTestSuite) TearDownTest() {
	s.cancel()
}

func (s *StatusHandlerTestSuite) request(quoteID string) *http.Request {
	return s.lineRequest("jam", quoteID)
}

func (s *StatusHandlerTestSuite) lineRequest(protocol string, quoteID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/orders/"+quoteID, nil)
	return mux.SetURLVars(req, map[string]string{
		"chainId":  "42161",
		"protocol": protocol,
		"quoteId":  quoteID,
	})
}

func finished(quoteID string, state lifecycle.State) *lifecycle.Result {
	result := lifecycle.NewResult(quoteID)
	result.ChainID = 42161
	result.Protocol = "jam"
	result.State = state
	return result
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_Finished() {
	result := finished("quote-1", lifecycle.StateFailed)
	result.TxHash = "0xabc"
	result.Polls = 4
	result.Err = lifecycle.ErrOrderFailed
	s.resultChn <- result
	time.Sleep(time.Millisecond * 50)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("quote-1"))

	s.Equal(http.StatusOK, recorder.Code)
	resp := new(handlers.StatusResponse)
	s.Nil(json.Unmarshal(recorder.Body.Bytes(), resp))
	s.Equal(handlers.StatusResponse{
		QuoteID:     "quote-1",
		LifecycleID: result.ID.String(),
		State:       "Failed",
		TxHash:      "0xabc",
		Polls:       4,
		Reason:      "order failed",
	}, *resp)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_InProgress() {
	s.mockProtocol.EXPECT().Submitted("quote-2").Return(true)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("quote-2"))

	s.Equal(http.StatusOK, recorder.Code)
	resp := new(handlers.StatusResponse)
	s.Nil(json.Unmarshal(recorder.Body.Bytes(), resp))
	s.Equal("Submitted", resp.State)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_Unknown() {
	s.mockProtocol.EXPECT().Submitted("quote-3").Return(false)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request("quote-3"))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_OtherProtocolLine() {
	s.resultChn <- finished("quote-4", lifecycle.StateSettled)
	time.Sleep(time.Millisecond * 50)
	s.mockPMM.EXPECT().Submitted("quote-4").Return(false)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.lineRequest("pmm", "quote-4"))

	s.Equal(http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	s.handler.HandleRequest(recorder, s.lineRequest("jam", "quote-4"))

	s.Equal(http.StatusOK, recorder.Code)
}
