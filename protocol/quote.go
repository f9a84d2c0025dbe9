package protocol

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

const (
	DEFAULT_TAKER  = "0x0000000000000000000000000000000000000001"
	DEFAULT_SOURCE = "sdk"
)

type ApprovalType string

const (
	ApprovalTypeStandard ApprovalType = "Standard"
	ApprovalTypePermit   ApprovalType = "Permit"
	ApprovalTypePermit2  ApprovalType = "Permit2"
)

var (
	ErrConflictingAmounts = errors.New("sell amounts and buy amounts cannot be both set")
	ErrMissingAmounts     = errors.New("either sell amounts or buy amounts must be set")
	ErrMissingRatios      = errors.New("buy tokens ratios are required when buying multiple tokens")
	ErrNoTransaction      = errors.New("quote has no transaction, request it with gasless disabled")
)

type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quote request: %s", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// QuoteRequest describes a trade intent. Exactly one of SellAmounts and
// BuyAmounts has to be set.
type QuoteRequest struct {
	SellTokens       []string
	BuyTokens        []string
	SellAmounts      []*big.Int
	BuyAmounts       []*big.Int
	TakerAddress     string
	ReceiverAddress  string
	Source           string
	ApprovalType     ApprovalType
	BuyTokensRatios  []float64
	SellTokensRatios []float64
	SkipValidation   bool
	Gasless          bool

	// SourceAuth is sent as the source-auth header, never as a query param.
	SourceAuth string
}

// NewQuoteRequest returns a gasless request with the default source and approval type.
func NewQuoteRequest(sellTokens []string, buyTokens []string) *QuoteRequest {
	return &QuoteRequest{
		SellTokens:   sellTokens,
		BuyTokens:    buyTokens,
		Source:       DEFAULT_SOURCE,
		ApprovalType: ApprovalTypeStandard,
		Gasless:      true,
	}
}

func (r *QuoteRequest) Validate() error {
	if len(r.SellAmounts) > 0 && len(r.BuyAmounts) > 0 {
		return &ValidationError{Err: ErrConflictingAmounts}
	}
	if len(r.SellAmounts) == 0 && len(r.BuyAmounts) == 0 {
		return &ValidationError{Err: ErrMissingAmounts}
	}
	if len(r.BuyTokens) > 1 && len(r.BuyTokensRatios) == 0 {
		return &ValidationError{Err: ErrMissingRatios}
	}
	return nil
}

// Taker returns the taker address sent with the request.
func (r *QuoteRequest) Taker() string {
	if r.TakerAddress == "" {
		return DEFAULT_TAKER
	}
	return r.TakerAddress
}

// Receiver returns the receiver address sent with the request.
func (r *QuoteRequest) Receiver() string {
	if r.ReceiverAddress == "" {
		return r.Taker()
	}
	return r.ReceiverAddress
}

// Params validates the request and serializes it into quote query params.
func (r *QuoteRequest) Params() (url.Values, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("sell_tokens", strings.Join(r.SellTokens, ","))
	params.Set("buy_tokens", strings.Join(r.BuyTokens, ","))
	if len(r.SellAmounts) > 0 {
		params.Set("sell_amounts", joinInts(r.SellAmounts))
	}
	if len(r.BuyAmounts) > 0 {
		params.Set("buy_amounts", joinInts(r.BuyAmounts))
	}
	params.Set("taker_address", r.Taker())
	params.Set("receiver_address", r.Receiver())

	source := r.Source
	if source == "" {
		source = DEFAULT_SOURCE
	}
	params.Set("source", source)

	approvalType := r.ApprovalType
	if approvalType == "" {
		approvalType = ApprovalTypeStandard
	}
	params.Set("approval_type", string(approvalType))

	if len(r.BuyTokensRatios) > 0 {
		params.Set("buy_tokens_ratios", joinFloats(r.BuyTokensRatios))
	}
	if len(r.SellTokensRatios) > 0 {
		params.Set("sell_tokens_ratios", joinFloats(r.SellTokensRatios))
	}
	params.Set("gasless", strconv.FormatBool(r.Gasless))
	params.Set("skip_validation", strconv.FormatBool(r.SkipValidation))

	return params, nil
}

func joinInts(ints []*big.Int) string {
	s := make([]string, len(ints))
	for i, v := range ints {
		s[i] = v.String()
	}
	return strings.Join(s, ",")
}

func joinFloats(floats []float64) string {
	s := make([]string, len(floats))
	for i, v := range floats {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(s, ",")
}

type GasFee struct {
	Native string   `json:"native"`
	USD    *float64 `json:"usd,omitempty"`
}

type Token struct {
	Amount          string   `json:"amount"`
	Decimals        int32    `json:"decimals"`
	Symbol          string   `json:"symbol"`
	PriceUSD        *float64 `json:"priceUsd,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	PriceBeforeFee  *float64 `json:"priceBeforeFee,omitempty"`
	AmountBeforeFee string   `json:"amountBeforeFee,omitempty"`
}

// AmountDecimal returns the token amount scaled by its decimals.
func (t Token) AmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %s: %w", t.Amount, err)
	}
	return d.Shift(-t.Decimals), nil
}

func (t Token) AmountBeforeFeeDecimal() (decimal.Decimal, error) {
	if t.AmountBeforeFee == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(t.AmountBeforeFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount before fee %s: %w", t.AmountBeforeFee, err)
	}
	return d.Shift(-t.Decimals), nil
}

// TxData is the settlement transaction returned for self executed quotes.
type TxData struct {
	From     string   `json:"from,omitempty"`
	To       string   `json:"to"`
	Value    string   `json:"value"`
	Data     string   `json:"data"`
	Gas      uint64   `json:"gas,omitempty"`
	GasPrice *big.Int `json:"gasPrice,omitempty"`
	Nonce    *uint64  `json:"nonce,omitempty"`
}

// ValueInt parses the transaction value which may be decimal or 0x prefixed hex.
func (t *TxData) ValueInt() (*big.Int, error) {
	if t.Value == "" {
		return big.NewInt(0), nil
	}

	v, ok := math.ParseBig256(t.Value)
	if !ok {
		return nil, fmt.Errorf("invalid tx value %s", t.Value)
	}
	return v, nil
}

func (t *TxData) ToAddress() (common.Address, error) {
	if !common.IsHexAddress(t.To) {
		return common.Address{}, fmt.Errorf("invalid tx recipient %s", t.To)
	}
	return common.HexToAddress(t.To), nil
}

// QuoteResponse holds the fields shared by quotes of every protocol line.
type QuoteResponse struct {
	Type               string            `json:"type"`
	Status             string            `json:"status"`
	QuoteID            string            `json:"quoteId"`
	ChainID            uint64            `json:"chainId"`
	ApprovalType       ApprovalType      `json:"approvalType"`
	NativeToken        string            `json:"nativeToken"`
	Taker              string            `json:"taker"`
	Receiver           string            `json:"receiver"`
	Expiry             int64             `json:"expiry"`
	GasFee             GasFee            `json:"gasFee"`
	BuyTokens          map[string]Token  `json:"buyTokens"`
	SellTokens         map[string]Token  `json:"sellTokens"`
	SettlementAddress  string            `json:"settlementAddress"`
	ApprovalTarget     string            `json:"approvalTarget"`
	RequiredSignatures []string          `json:"requiredSignatures"`
	PartnerFee         map[string]string `json:"partnerFee,omitempty"`
	ProtocolFee        map[string]string `json:"protocolFee,omitempty"`
	Tx                 *TxData           `json:"tx,omitempty"`
}

func (q *QuoteResponse) ID() string {
	return q.QuoteID
}

func (q *QuoteResponse) ExpiresAt() time.Time {
	return time.Unix(q.Expiry, 0)
}

func (q *QuoteResponse) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt())
}

// Transaction returns the settlement transaction for self execution.
func (q *QuoteResponse) Transaction() (*TxData, error) {
	if q.Tx == nil {
		return nil, ErrNoTransaction
	}
	return q.Tx, nil
}

// SellUSDAmount sums the USD value of the sold tokens that carry a USD price.
func (q *QuoteResponse) SellUSDAmount() decimal.Decimal {
	return usdAmount(q.SellTokens)
}

// BuyUSDAmount sums the USD value of the bought tokens that carry a USD price.
func (q *QuoteResponse) BuyUSDAmount() decimal.Decimal {
	return usdAmount(q.BuyTokens)
}

func usdAmount(tokens map[string]Token) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tokens {
		if t.PriceUSD == nil {
			continue
		}

		amount, err := t.AmountDecimal()
		if err != nil {
			continue
		}
		total = total.Add(amount.Mul(decimal.NewFromFloat(*t.PriceUSD)))
	}
	return total
}
