package pmm

import (
	"context"
	"math/big"

	"github.com/bebop-dex/go-sdk/cache"
	"github.com/bebop-dex/go-sdk/chains/evm/executor"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/metrics"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TakerExecutor sends settlement and approval transactions from the taker account.
type TakerExecutor interface {
	lifecycle.TxExecutor
	Approve(ctx context.Context, token common.Address, spender common.Address, amount *big.Int) (common.Hash, error)
	Revoke(ctx context.Context, token common.Address, spender common.Address) (common.Hash, error)
}

type ClientConfig struct {
	// Taker signs orders. Without it only quotes and status lookups are available.
	Taker lifecycle.Taker
	// Executor enables self executed orders and token approvals.
	Executor    TakerExecutor
	Metrics     lifecycle.Metrics
	Submissions lifecycle.Submissions
	Lifecycle   lifecycle.Config
}

// Client runs PMM quotes through the order lifecycle on one chain.
type Client struct {
	api        *API
	taker      lifecycle.Taker
	executor   TakerExecutor
	controller *lifecycle.Controller
}

func NewClient(api *API, config ClientConfig) (*Client, error) {
	if config.Metrics == nil {
		m, err := metrics.NewLifecycleMetrics(
			context.Background(),
			otel.GetMeterProvider().Meter(metrics.METER_NAME),
			metric.WithAttributes(attribute.String("protocol", PROTOCOL_NAME), attribute.String("chain", api.Chain().Name)),
		)
		if err != nil {
			return nil, err
		}
		config.Metrics = m
	}
	if config.Submissions == nil {
		config.Submissions = cache.NewSubmissionCache(cache.SUBMISSION_TTL)
	}
	if config.Lifecycle.StatusPolicy.Attempts == 0 {
		config.Lifecycle.StatusPolicy = lifecycle.Policy{Attempts: POLL_ATTEMPTS, Interval: POLL_INTERVAL}
	}
	if config.Lifecycle.ReceiptPolicy.Attempts == 0 {
		config.Lifecycle.ReceiptPolicy = lifecycle.Policy{Attempts: executor.RECEIPT_ATTEMPTS, Interval: executor.RECEIPT_INTERVAL}
	}
	config.Lifecycle.ChainID = api.Chain().ID
	config.Lifecycle.Protocol = PROTOCOL_NAME

	var txExecutor lifecycle.TxExecutor
	if config.Executor != nil {
		txExecutor = config.Executor
	}

	return &Client{
		api:      api,
		taker:    config.Taker,
		executor: config.Executor,
		controller: lifecycle.NewController(
			api,
			config.Taker,
			txExecutor,
			config.Metrics,
			config.Submissions,
			config.Lifecycle,
		),
	}, nil
}

func (c *Client) API() *API {
	return c.api
}

func (c *Client) Controller() *lifecycle.Controller {
	return c.controller
}

// GetQuote requests a quote, taking it with the client signer when the request has no taker.
func (c *Client) GetQuote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if req.TakerAddress == "" && c.taker != nil {
		req.TakerAddress = c.taker.Address().Hex()
	}

	return c.api.GetQuote(ctx, req)
}

func (c *Client) PostOrder(ctx context.Context, req *protocol.OrderRequest) (*protocol.OrderResponse, error) {
	return c.api.PostOrder(ctx, req)
}

func (c *Client) GetOrderStatus(ctx context.Context, quoteID string) (*protocol.OrderStatusResponse, error) {
	return c.api.OrderStatus(ctx, quoteID)
}

// Quote requests a quote for a request that carries no PMM specific options.
func (c *Client) Quote(ctx context.Context, req protocol.QuoteRequest) (lifecycle.Quotable, error) {
	quote, err := c.GetQuote(ctx, &QuoteRequest{QuoteRequest: req, ExpiryType: ExpiryStandard})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Execute signs and submits a quote obtained before, without requesting a new one.
func (c *Client) Execute(ctx context.Context, quote lifecycle.Quotable) (*lifecycle.Result, error) {
	if c.taker == nil {
		return nil, lifecycle.ErrNoSigner
	}
	return c.controller.Execute(ctx, quote)
}

func (c *Client) ExecuteSelf(ctx context.Context, quote lifecycle.Quotable) (*lifecycle.Result, error) {
	return c.controller.ExecuteSelf(ctx, quote)
}

func (c *Client) Submitted(quoteID string) bool {
	return c.controller.Submitted(quoteID)
}

// SendGaslessOrder quotes the request, signs the order and tracks it until settlement.
func (c *Client) SendGaslessOrder(ctx context.Context, req *QuoteRequest) (*lifecycle.Result, error) {
	if c.taker == nil {
		return nil, lifecycle.ErrNoSigner
	}

	req.Gasless = true
	quote, err := c.GetQuote(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.controller.Execute(ctx, quote)
}

// SendTakerOrder quotes the request and settles it with a transaction sent by the taker.
func (c *Client) SendTakerOrder(ctx context.Context, req *QuoteRequest) (*lifecycle.Result, error) {
	if c.executor == nil {
		return nil, lifecycle.ErrNoExecutor
	}

	req.Gasless = false
	quote, err := c.GetQuote(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.controller.ExecuteSelf(ctx, quote)
}

// ApproveToken lets the settlement contract pull amount of token from the taker.
func (c *Client) ApproveToken(ctx context.Context, token common.Address, amount *big.Int) (common.Hash, error) {
	if c.executor == nil {
		return common.Hash{}, lifecycle.ErrNoExecutor
	}

	return c.executor.Approve(ctx, token, SETTLEMENT_ADDRESS, amount)
}

func (c *Client) RevokeToken(ctx context.Context, token common.Address) (common.Hash, error) {
	if c.executor == nil {
		return common.Hash{}, lifecycle.ErrNoExecutor
	}

	return c.executor.Revoke(ctx, token, SETTLEMENT_ADDRESS)
}
