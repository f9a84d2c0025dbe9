// Package lifecycle drives a quote through signing, submission and settlement tracking.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bebop-dex/go-sdk/chains/evm/executor"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type OrderAPI interface {
	PostOrder(ctx context.Context, req *protocol.OrderRequest) (*protocol.OrderResponse, error)
	OrderStatus(ctx context.Context, quoteID string) (*protocol.OrderStatusResponse, error)
}

type Signer interface {
	SignTypedData(ctx context.Context, typedData apitypes.TypedData) ([]byte, error)
}

// Taker is a signer bound to the account that takes the quotes.
type Taker interface {
	Signer
	Address() common.Address
}

// TxExecutor broadcasts self executed settlement transactions. Receipt returns a nil
// receipt while the transaction is not mined.
type TxExecutor interface {
	Send(ctx context.Context, tx *protocol.TxData) (common.Hash, error)
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

type Metrics interface {
	StartLifecycle(id string)
	EndLifecycle(id string, outcome string)
}

// Submissions records which quotes were already submitted.
type Submissions interface {
	// MarkSubmitted returns false if the quote was marked before.
	MarkSubmitted(quoteID string) bool
	Submitted(quoteID string) bool
}

// Quotable is a quote of any protocol line that can be signed and settled.
type Quotable interface {
	ID() string
	ExpiresAt() time.Time
	TypedData() (apitypes.TypedData, error)
	Transaction() (*protocol.TxData, error)
}

type Config struct {
	// ChainID and Protocol label the results of the controller.
	ChainID  uint64
	Protocol string

	StatusPolicy  Policy
	ReceiptPolicy Policy
	// Results receives every lifecycle that reached submission. Optional.
	Results chan<- *Result
}

type Controller struct {
	api         OrderAPI
	signer      Signer
	executor    TxExecutor
	metrics     Metrics
	submissions Submissions

	chainID  uint64
	protocol string

	statusPolicy  Policy
	receiptPolicy Policy
	results       chan<- *Result
}

func NewController(
	api OrderAPI,
	signer Signer,
	executor TxExecutor,
	metrics Metrics,
	submissions Submissions,
	config Config,
) *Controller {
	return &Controller{
		api:           api,
		signer:        signer,
		executor:      executor,
		metrics:       metrics,
		submissions:   submissions,
		chainID:       config.ChainID,
		protocol:      config.Protocol,
		statusPolicy:  config.StatusPolicy,
		receiptPolicy: config.ReceiptPolicy,
		results:       config.Results,
	}
}

// Execute signs the quote, submits the gasless order once and polls the order status
// until it settles, fails or the status policy is exhausted. A definitive rejection of
// the order is reported as a Failed result and not as an error.
func (c *Controller) Execute(ctx context.Context, quote Quotable) (*Result, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}

	result := c.newResult(quote.ID())
	logger := log.With().Str("quoteID", quote.ID()).Str("lifecycleID", result.ID.String()).Logger()

	if err := c.checkQuote(quote); err != nil {
		return nil, err
	}

	typedData, err := quote.TypedData()
	if err != nil {
		return nil, err
	}
	sig, err := c.signer.SignTypedData(ctx, typedData)
	if err != nil {
		return nil, &SigningError{QuoteID: quote.ID(), Err: err}
	}
	result.Signature = hexutil.Encode(sig)
	result.advance(StateSigned)

	if !c.submissions.MarkSubmitted(quote.ID()) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadySubmitted, quote.ID())
	}

	c.metrics.StartLifecycle(result.ID.String())
	defer c.finish(result)

	order, err := c.api.PostOrder(ctx, protocol.NewOrderRequest(quote.ID(), result.Signature))
	if err != nil {
		var apiErr *protocol.APIError
		if errors.As(err, &apiErr) && apiErr.Rejected() {
			logger.Warn().Msgf("Order rejected: %s", apiErr.Message)
			result.Err = apiErr
			result.advance(StateFailed)
			return result, nil
		}

		return nil, fmt.Errorf("failed to submit order %s: %w", quote.ID(), err)
	}

	result.Order = order
	result.TxHash = order.TxHash
	result.advance(StateSubmitted)
	logger.Info().Msgf("Submitted order with status %s", order.Status)

	polls, done, err := c.statusPolicy.Poll(ctx, func(ctx context.Context) bool {
		status, err := c.api.OrderStatus(ctx, quote.ID())
		if err != nil {
			logger.Warn().Msgf("Failed fetching order status: %s", err)
			return false
		}

		result.Status = status
		if status.TxHash != "" {
			result.TxHash = status.TxHash
		}

		state := StateFromStatus(status.Status)
		result.advance(state)
		return state.Terminal()
	})
	result.Polls = polls
	if err != nil {
		return result, fmt.Errorf("polling order %s: %w", quote.ID(), err)
	}
	if !done {
		result.advance(StateTimedOut)
	}
	if result.State == StateFailed {
		result.Err = ErrOrderFailed
	}

	logOutcome(logger, result)
	return result, nil
}

// ExecuteSelf broadcasts the settlement transaction of a non gasless quote from the
// taker account and polls its receipt.
func (c *Controller) ExecuteSelf(ctx context.Context, quote Quotable) (*Result, error) {
	if c.executor == nil {
		return nil, ErrNoExecutor
	}

	result := c.newResult(quote.ID())
	logger := log.With().Str("quoteID", quote.ID()).Str("lifecycleID", result.ID.String()).Logger()

	if err := c.checkQuote(quote); err != nil {
		return nil, err
	}

	tx, err := quote.Transaction()
	if err != nil {
		return nil, err
	}

	if !c.submissions.MarkSubmitted(quote.ID()) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadySubmitted, quote.ID())
	}

	hash, err := c.executor.Send(ctx, tx)
	if errors.Is(err, executor.ErrSignTx) {
		return nil, &SigningError{QuoteID: quote.ID(), Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction for quote %s: %w", quote.ID(), err)
	}

	c.metrics.StartLifecycle(result.ID.String())
	defer c.finish(result)

	result.TxHash = hash.Hex()
	result.advance(StateSigned)
	result.advance(StateSubmitted)
	logger.Info().Msgf("Sent settlement transaction %s", result.TxHash)

	polls, done, err := c.receiptPolicy.Poll(ctx, func(ctx context.Context) bool {
		receipt, err := c.executor.Receipt(ctx, hash)
		if err != nil {
			logger.Warn().Msgf("Failed fetching receipt: %s", err)
			return false
		}
		if receipt == nil {
			result.advance(StatePending)
			return false
		}

		result.Receipt = receipt
		if receipt.Status == types.ReceiptStatusSuccessful {
			result.advance(StateConfirmed)
		} else {
			result.Err = ErrTxReverted
			result.advance(StateFailed)
		}
		return true
	})
	result.Polls = polls
	if err != nil {
		return result, fmt.Errorf("polling receipt %s: %w", result.TxHash, err)
	}
	if !done {
		result.advance(StateTimedOut)
	}

	logOutcome(logger, result)
	return result, nil
}

// Submitted reports whether the quote already went through this controller.
func (c *Controller) Submitted(quoteID string) bool {
	return c.submissions.Submitted(quoteID)
}

func (c *Controller) newResult(quoteID string) *Result {
	result := NewResult(quoteID)
	result.ChainID = c.chainID
	result.Protocol = c.protocol
	return result
}

func (c *Controller) checkQuote(quote Quotable) error {
	if !time.Now().Before(quote.ExpiresAt()) {
		return fmt.Errorf("%w: %s at %s", ErrQuoteExpired, quote.ID(), quote.ExpiresAt())
	}
	if c.submissions.Submitted(quote.ID()) {
		return fmt.Errorf("%w: %s", ErrAlreadySubmitted, quote.ID())
	}
	return nil
}

func (c *Controller) finish(result *Result) {
	c.metrics.EndLifecycle(result.ID.String(), string(result.State))
	if c.results != nil {
		c.results <- result
	}
}

func logOutcome(logger zerolog.Logger, result *Result) {
	switch result.State {
	case StateSettled, StateConfirmed:
		logger.Info().Msgf("Order %s after %d polls, tx %s", result.State, result.Polls, result.TxHash)
	case StateTimedOut:
		logger.Warn().Msgf("Could not confirm order status after %d polls", result.Polls)
	default:
		logger.Warn().Msgf("Order ended in state %s after %d polls", result.State, result.Polls)
	}
}

type Result struct {
	ID        uuid.UUID
	QuoteID   string
	ChainID   uint64
	Protocol  string
	State     State
	Signature string
	Order     *protocol.OrderResponse
	Status    *protocol.OrderStatusResponse
	Receipt   *types.Receipt
	TxHash    string
	Polls     int
	// Err is the reason of a Failed result.
	Err error
}

func NewResult(quoteID string) *Result {
	return &Result{
		ID:      uuid.New(),
		QuoteID: quoteID,
		State:   StateQuoteReceived,
	}
}

func (r *Result) advance(next State) {
	if !r.State.CanTransition(next) {
		log.Error().Str("quoteID", r.QuoteID).Msgf("Invalid lifecycle transition from %s to %s", r.State, next)
		return
	}
	r.State = next
}
