package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/api"
	"github.com/bebop-dex/go-sdk/api/handlers"
	mock_handlers "github.com/bebop-dex/go-sdk/api/handlers/mock"
	"github.com/bebop-dex/go-sdk/cache"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite

	mockProtocol *mock_handlers.MockProtocol
	server       *httptest.Server
	cancel       context.CancelFunc
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockProtocol = mock_handlers.NewMockProtocol(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	protocols := handlers.Protocols{1: {"pmm": s.mockProtocol}}
	quotes := cache.NewQuoteCache(time.Minute)
	results := cache.NewResultCache(ctx, make(chan *lifecycle.Result))

	s.server = httptest.NewServer(api.NewRouter(
		handlers.NewQuoteHandler(protocols, quotes),
		handlers.NewOrderHandler(ctx, protocols, quotes, 1),
		handlers.NewStatusHandler(protocols, results),
	))
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
	s.cancel()
}

func (s *RouterTestSuite) Test_NonNumericChainID() {
	resp, err := http.Post(s.server.URL+"/v1/chains/ethereum/pmm/quotes", "application/json", bytes.NewReader([]byte("{}")))
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *RouterTestSuite) Test_WrongMethod() {
	resp, err := http.Get(s.server.URL + "/v1/chains/1/pmm/quotes")
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *RouterTestSuite) Test_OrderStatus() {
	s.mockProtocol.EXPECT().Submitted("quote-1").Return(true)

	resp, err := http.Get(s.server.URL + "/v1/chains/1/pmm/orders/quote-1")
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}
