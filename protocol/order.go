package protocol

import (
	"context"
	"net/url"
)

const SIGN_SCHEME_EIP712 = "EIP712"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusSuccess   OrderStatus = "Success"
	OrderStatusSettled   OrderStatus = "Settled"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusFailed    OrderStatus = "Failed"
)

// Settled reports whether the status marks a settled order.
func (s OrderStatus) Settled() bool {
	return s == OrderStatusSettled || s == OrderStatusConfirmed
}

func (s OrderStatus) Failed() bool {
	return s == OrderStatusFailed
}

type Permit struct {
	Signature         string `json:"signature"`
	ApprovalsDeadline int64  `json:"approvals_deadline"`
}

type Permit2 struct {
	Signature         string   `json:"signature"`
	ApprovalsDeadline int64    `json:"approvals_deadline"`
	TokenAddresses    []string `json:"token_addresses"`
	TokenNonces       []uint64 `json:"token_nonces"`
}

type OrderRequest struct {
	QuoteID    string   `json:"quote_id"`
	Signature  string   `json:"signature"`
	SignScheme string   `json:"sign_scheme"`
	Permit2    *Permit2 `json:"permit2,omitempty"`
	Permit     *Permit  `json:"permit,omitempty"`
}

func NewOrderRequest(quoteID string, signature string) *OrderRequest {
	return &OrderRequest{
		QuoteID:    quoteID,
		Signature:  signature,
		SignScheme: SIGN_SCHEME_EIP712,
	}
}

type OrderResponse struct {
	Status string `json:"status"`
	Expiry int64  `json:"expiry"`
	TxHash string `json:"txHash,omitempty"`
}

type OrderStatusResponse struct {
	Status  OrderStatus       `json:"status"`
	TxHash  string            `json:"txHash,omitempty"`
	Amounts map[string]string `json:"amounts,omitempty"`
}

// Endpoints are the paths of one protocol line on one chain, relative to the API root.
type Endpoints struct {
	Quote       string
	Order       string
	OrderStatus string
}

// OrderClient submits orders and fetches their status on one protocol line.
type OrderClient struct {
	*API
	Endpoints Endpoints
}

func (c *OrderClient) PostOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	resp := new(OrderResponse)
	if err := c.Post(ctx, c.Endpoints.Order, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *OrderClient) OrderStatus(ctx context.Context, quoteID string) (*OrderStatusResponse, error) {
	params := url.Values{}
	params.Set("quote_id", quoteID)

	resp := new(OrderStatusResponse)
	if err := c.Get(ctx, c.Endpoints.OrderStatus, params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
