package pmm

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// OrderType is the onchain order topology a PMM quote settles with.
type OrderType string

const (
	SingleOrderType    OrderType = "SingleOrder"
	MultiOrderType     OrderType = "MultiOrder"
	AggregateOrderType OrderType = "AggregateOrder"
)

var SingleOrderSchema = signature.Schema{
	Name: "SingleOrder",
	Fields: []apitypes.Type{
		{Name: "partner_id", Type: "uint64"},
		{Name: "expiry", Type: "uint256"},
		{Name: "taker_address", Type: "address"},
		{Name: "maker_address", Type: "address"},
		{Name: "maker_nonce", Type: "uint256"},
		{Name: "taker_token", Type: "address"},
		{Name: "maker_token", Type: "address"},
		{Name: "taker_amount", Type: "uint256"},
		{Name: "maker_amount", Type: "uint256"},
		{Name: "receiver", Type: "address"},
		{Name: "packed_commands", Type: "uint256"},
	},
}

var MultiOrderSchema = signature.Schema{
	Name: "MultiOrder",
	Fields: []apitypes.Type{
		{Name: "partner_id", Type: "uint64"},
		{Name: "expiry", Type: "uint256"},
		{Name: "taker_address", Type: "address"},
		{Name: "maker_address", Type: "address"},
		{Name: "maker_nonce", Type: "uint256"},
		{Name: "taker_tokens", Type: "address[]"},
		{Name: "maker_tokens", Type: "address[]"},
		{Name: "taker_amounts", Type: "uint256[]"},
		{Name: "maker_amounts", Type: "uint256[]"},
		{Name: "receiver", Type: "address"},
		{Name: "commands", Type: "bytes"},
	},
}

var AggregateOrderSchema = signature.Schema{
	Name: "AggregateOrder",
	Fields: []apitypes.Type{
		{Name: "partner_id", Type: "uint64"},
		{Name: "expiry", Type: "uint256"},
		{Name: "taker_address", Type: "address"},
		{Name: "maker_addresses", Type: "address[]"},
		{Name: "maker_nonces", Type: "uint256[]"},
		{Name: "taker_tokens", Type: "address[][]"},
		{Name: "maker_tokens", Type: "address[][]"},
		{Name: "taker_amounts", Type: "uint256[][]"},
		{Name: "maker_amounts", Type: "uint256[][]"},
		{Name: "receiver", Type: "address"},
		{Name: "commands", Type: "bytes"},
	},
}

// Payloads of the toSign object per order type. Amounts and nonces arrive as decimal strings.

type baseToSign struct {
	PartnerID    json.Number `json:"partner_id"`
	Expiry       json.Number `json:"expiry"`
	TakerAddress string      `json:"taker_address"`
	Receiver     string      `json:"receiver"`
}

type SingleOrderToSign struct {
	baseToSign
	MakerAddress   string `json:"maker_address"`
	MakerNonce     string `json:"maker_nonce"`
	TakerToken     string `json:"taker_token"`
	MakerToken     string `json:"maker_token"`
	TakerAmount    string `json:"taker_amount"`
	MakerAmount    string `json:"maker_amount"`
	PackedCommands string `json:"packed_commands"`
}

type MultiOrderToSign struct {
	baseToSign
	MakerAddress string   `json:"maker_address"`
	MakerNonce   string   `json:"maker_nonce"`
	TakerTokens  []string `json:"taker_tokens"`
	MakerTokens  []string `json:"maker_tokens"`
	TakerAmounts []string `json:"taker_amounts"`
	MakerAmounts []string `json:"maker_amounts"`
	Commands     string   `json:"commands"`
}

type AggregateOrderToSign struct {
	baseToSign
	MakerAddresses []string   `json:"maker_addresses"`
	MakerNonces    []string   `json:"maker_nonces"`
	TakerTokens    [][]string `json:"taker_tokens"`
	MakerTokens    [][]string `json:"maker_tokens"`
	TakerAmounts   [][]string `json:"taker_amounts"`
	MakerAmounts   [][]string `json:"maker_amounts"`
	Commands       string     `json:"commands"`
}

type base struct {
	PartnerID    *big.Int
	Expiry       *big.Int
	TakerAddress common.Address
	Receiver     common.Address
}

func (b base) message() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"partner_id":    b.PartnerID,
		"expiry":        b.Expiry,
		"taker_address": b.TakerAddress.Hex(),
		"receiver":      b.Receiver.Hex(),
	}
}

type SingleOrder struct {
	base
	MakerAddress   common.Address
	MakerNonce     *big.Int
	TakerToken     common.Address
	MakerToken     common.Address
	TakerAmount    *big.Int
	MakerAmount    *big.Int
	PackedCommands *big.Int
}

func (o *SingleOrder) Schema() signature.Schema {
	return SingleOrderSchema
}

func (o *SingleOrder) Message() apitypes.TypedDataMessage {
	msg := o.base.message()
	msg["maker_address"] = o.MakerAddress.Hex()
	msg["maker_nonce"] = o.MakerNonce
	msg["taker_token"] = o.TakerToken.Hex()
	msg["maker_token"] = o.MakerToken.Hex()
	msg["taker_amount"] = o.TakerAmount
	msg["maker_amount"] = o.MakerAmount
	msg["packed_commands"] = o.PackedCommands
	return msg
}

type MultiOrder struct {
	base
	MakerAddress common.Address
	MakerNonce   *big.Int
	TakerTokens  []common.Address
	MakerTokens  []common.Address
	TakerAmounts []*big.Int
	MakerAmounts []*big.Int
	Commands     []byte
}

func (o *MultiOrder) Schema() signature.Schema {
	return MultiOrderSchema
}

func (o *MultiOrder) Message() apitypes.TypedDataMessage {
	msg := o.base.message()
	msg["maker_address"] = o.MakerAddress.Hex()
	msg["maker_nonce"] = o.MakerNonce
	msg["taker_tokens"] = signature.AddressesHex(o.TakerTokens)
	msg["maker_tokens"] = signature.AddressesHex(o.MakerTokens)
	msg["taker_amounts"] = o.TakerAmounts
	msg["maker_amounts"] = o.MakerAmounts
	msg["commands"] = o.Commands
	return msg
}

// AggregateOrder settles the taker against several makers. Row i of every matrix
// belongs to maker i.
type AggregateOrder struct {
	base
	MakerAddresses []common.Address
	MakerNonces    []*big.Int
	TakerTokens    [][]common.Address
	MakerTokens    [][]common.Address
	TakerAmounts   [][]*big.Int
	MakerAmounts   [][]*big.Int
	Commands       []byte
}

func (o *AggregateOrder) Schema() signature.Schema {
	return AggregateOrderSchema
}

func (o *AggregateOrder) Message() apitypes.TypedDataMessage {
	msg := o.base.message()
	msg["maker_addresses"] = signature.AddressesHex(o.MakerAddresses)
	msg["maker_nonces"] = o.MakerNonces
	msg["taker_tokens"] = signature.AddressMatrixHex(o.TakerTokens)
	msg["maker_tokens"] = signature.AddressMatrixHex(o.MakerTokens)
	msg["taker_amounts"] = o.TakerAmounts
	msg["maker_amounts"] = o.MakerAmounts
	msg["commands"] = o.Commands
	return msg
}

// MapOrder decodes the raw toSign payload with the topology named by the quote's
// onchainOrderType.
func MapOrder(orderType OrderType, raw json.RawMessage) (signature.Order, error) {
	switch orderType {
	case SingleOrderType:
		var toSign SingleOrderToSign
		if err := decode(raw, &toSign); err != nil {
			return nil, err
		}
		return mapSingleOrder(toSign)
	case MultiOrderType:
		var toSign MultiOrderToSign
		if err := decode(raw, &toSign); err != nil {
			return nil, err
		}
		return mapMultiOrder(toSign)
	case AggregateOrderType:
		var toSign AggregateOrderToSign
		if err := decode(raw, &toSign); err != nil {
			return nil, err
		}
		return mapAggregateOrder(toSign)
	default:
		return nil, signature.UnsupportedTopologyError(string(orderType))
	}
}

func decode(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &signature.MalformedPayloadError{Field: "toSign", Value: string(raw), Err: err}
	}
	return nil
}

func mapBase(toSign baseToSign) (base, error) {
	var err error
	b := base{}

	if b.PartnerID, err = signature.ParseUint("partner_id", toSign.PartnerID.String()); err != nil {
		return b, err
	}
	if !b.PartnerID.IsUint64() {
		return b, &signature.MalformedPayloadError{Field: "partner_id", Value: toSign.PartnerID.String(), Err: fmt.Errorf("exceeds uint64")}
	}
	if b.Expiry, err = signature.ParseUint("expiry", toSign.Expiry.String()); err != nil {
		return b, err
	}
	if b.TakerAddress, err = signature.ParseAddress("taker_address", toSign.TakerAddress); err != nil {
		return b, err
	}
	if b.Receiver, err = signature.ParseAddress("receiver", toSign.Receiver); err != nil {
		return b, err
	}
	return b, nil
}

func mapSingleOrder(toSign SingleOrderToSign) (*SingleOrder, error) {
	b, err := mapBase(toSign.baseToSign)
	if err != nil {
		return nil, err
	}

	o := &SingleOrder{base: b}
	if o.MakerAddress, err = signature.ParseAddress("maker_address", toSign.MakerAddress); err != nil {
		return nil, err
	}
	if o.MakerNonce, err = signature.ParseUint("maker_nonce", toSign.MakerNonce); err != nil {
		return nil, err
	}
	if o.TakerToken, err = signature.ParseAddress("taker_token", toSign.TakerToken); err != nil {
		return nil, err
	}
	if o.MakerToken, err = signature.ParseAddress("maker_token", toSign.MakerToken); err != nil {
		return nil, err
	}
	if o.TakerAmount, err = signature.ParseUint("taker_amount", toSign.TakerAmount); err != nil {
		return nil, err
	}
	if o.MakerAmount, err = signature.ParseUint("maker_amount", toSign.MakerAmount); err != nil {
		return nil, err
	}
	if o.PackedCommands, err = signature.ParseUint("packed_commands", toSign.PackedCommands); err != nil {
		return nil, err
	}
	return o, nil
}

func mapMultiOrder(toSign MultiOrderToSign) (*MultiOrder, error) {
	b, err := mapBase(toSign.baseToSign)
	if err != nil {
		return nil, err
	}

	o := &MultiOrder{base: b}
	if o.MakerAddress, err = signature.ParseAddress("maker_address", toSign.MakerAddress); err != nil {
		return nil, err
	}
	if o.MakerNonce, err = signature.ParseUint("maker_nonce", toSign.MakerNonce); err != nil {
		return nil, err
	}
	if o.TakerTokens, err = signature.ParseAddresses("taker_tokens", toSign.TakerTokens); err != nil {
		return nil, err
	}
	if o.MakerTokens, err = signature.ParseAddresses("maker_tokens", toSign.MakerTokens); err != nil {
		return nil, err
	}
	if o.TakerAmounts, err = signature.ParseUints("taker_amounts", toSign.TakerAmounts); err != nil {
		return nil, err
	}
	if o.MakerAmounts, err = signature.ParseUints("maker_amounts", toSign.MakerAmounts); err != nil {
		return nil, err
	}
	if o.Commands, err = signature.ParseHexBytes("commands", toSign.Commands); err != nil {
		return nil, err
	}
	return o, nil
}

func mapAggregateOrder(toSign AggregateOrderToSign) (*AggregateOrder, error) {
	b, err := mapBase(toSign.baseToSign)
	if err != nil {
		return nil, err
	}

	o := &AggregateOrder{base: b}
	if o.MakerAddresses, err = signature.ParseAddresses("maker_addresses", toSign.MakerAddresses); err != nil {
		return nil, err
	}
	if o.MakerNonces, err = signature.ParseUints("maker_nonces", toSign.MakerNonces); err != nil {
		return nil, err
	}
	if o.TakerTokens, err = signature.ParseAddressMatrix("taker_tokens", toSign.TakerTokens); err != nil {
		return nil, err
	}
	if o.MakerTokens, err = signature.ParseAddressMatrix("maker_tokens", toSign.MakerTokens); err != nil {
		return nil, err
	}
	if o.TakerAmounts, err = signature.ParseUintMatrix("taker_amounts", toSign.TakerAmounts); err != nil {
		return nil, err
	}
	if o.MakerAmounts, err = signature.ParseUintMatrix("maker_amounts", toSign.MakerAmounts); err != nil {
		return nil, err
	}
	if o.Commands, err = signature.ParseHexBytes("commands", toSign.Commands); err != nil {
		return nil, err
	}
	return o, nil
}
