package jam

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type SchemaVersion int

const (
	SchemaV1 SchemaVersion = 1
	SchemaV2 SchemaVersion = 2
)

var ErrUnsupportedSchemaVersion = errors.New("unsupported jam schema version")

// ParseSchemaVersion selects the order schema a client signs with.
func ParseSchemaVersion(v int) (SchemaVersion, error) {
	switch SchemaVersion(v) {
	case SchemaV1, SchemaV2:
		return SchemaVersion(v), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedSchemaVersion, v)
	}
}

var OrderSchemaV1 = signature.Schema{
	Name: "JamOrder",
	Fields: []apitypes.Type{
		{Name: "taker", Type: "address"},
		{Name: "receiver", Type: "address"},
		{Name: "expiry", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "executor", Type: "address"},
		{Name: "minFillPercent", Type: "uint16"},
		{Name: "hooksHash", Type: "bytes32"},
		{Name: "sellTokens", Type: "address[]"},
		{Name: "buyTokens", Type: "address[]"},
		{Name: "sellAmounts", Type: "uint256[]"},
		{Name: "buyAmounts", Type: "uint256[]"},
		{Name: "sellNFTIds", Type: "uint256[]"},
		{Name: "buyNFTIds", Type: "uint256[]"},
		{Name: "sellTokenTransfers", Type: "bytes"},
		{Name: "buyTokenTransfers", Type: "bytes"},
	},
}

var OrderSchemaV2 = signature.Schema{
	Name: "JamOrder",
	Fields: []apitypes.Type{
		{Name: "taker", Type: "address"},
		{Name: "receiver", Type: "address"},
		{Name: "expiry", Type: "uint256"},
		{Name: "exclusivityDeadline", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "executor", Type: "address"},
		{Name: "partnerInfo", Type: "uint256"},
		{Name: "sellTokens", Type: "address[]"},
		{Name: "buyTokens", Type: "address[]"},
		{Name: "sellAmounts", Type: "uint256[]"},
		{Name: "buyAmounts", Type: "uint256[]"},
		{Name: "hooksHash", Type: "bytes32"},
	},
}

// ToSign is the order payload of a JAM quote as sent by the API. Amounts and the
// nonce arrive as decimal strings. The V1 only fields are absent on V2 quotes.
type ToSign struct {
	Taker               string      `json:"taker"`
	Receiver            string      `json:"receiver"`
	Expiry              json.Number `json:"expiry"`
	ExclusivityDeadline json.Number `json:"exclusivityDeadline"`
	Nonce               string      `json:"nonce"`
	Executor            string      `json:"executor"`
	PartnerInfo         json.Number `json:"partnerInfo"`
	SellTokens          []string    `json:"sellTokens"`
	BuyTokens           []string    `json:"buyTokens"`
	SellAmounts         []string    `json:"sellAmounts"`
	BuyAmounts          []string    `json:"buyAmounts"`
	HooksHash           string      `json:"hooksHash"`

	MinFillPercent     json.Number `json:"minFillPercent,omitempty"`
	SellNFTIds         []string    `json:"sellNFTIds,omitempty"`
	BuyNFTIds          []string    `json:"buyNFTIds,omitempty"`
	SellTokenTransfers string      `json:"sellTokenTransfers,omitempty"`
	BuyTokenTransfers  string      `json:"buyTokenTransfers,omitempty"`
}

type OrderV1 struct {
	Taker              common.Address
	Receiver           common.Address
	Expiry             *big.Int
	Nonce              *big.Int
	Executor           common.Address
	MinFillPercent     *big.Int
	HooksHash          common.Hash
	SellTokens         []common.Address
	BuyTokens          []common.Address
	SellAmounts        []*big.Int
	BuyAmounts         []*big.Int
	SellNFTIds         []*big.Int
	BuyNFTIds          []*big.Int
	SellTokenTransfers []byte
	BuyTokenTransfers  []byte
}

func (o *OrderV1) Schema() signature.Schema {
	return OrderSchemaV1
}

func (o *OrderV1) Message() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"taker":              o.Taker.Hex(),
		"receiver":           o.Receiver.Hex(),
		"expiry":             o.Expiry,
		"nonce":              o.Nonce,
		"executor":           o.Executor.Hex(),
		"minFillPercent":     o.MinFillPercent,
		"hooksHash":          o.HooksHash.Bytes(),
		"sellTokens":         signature.AddressesHex(o.SellTokens),
		"buyTokens":          signature.AddressesHex(o.BuyTokens),
		"sellAmounts":        o.SellAmounts,
		"buyAmounts":         o.BuyAmounts,
		"sellNFTIds":         o.SellNFTIds,
		"buyNFTIds":          o.BuyNFTIds,
		"sellTokenTransfers": o.SellTokenTransfers,
		"buyTokenTransfers":  o.BuyTokenTransfers,
	}
}

type OrderV2 struct {
	Taker               common.Address
	Receiver            common.Address
	Expiry              *big.Int
	ExclusivityDeadline *big.Int
	Nonce               *big.Int
	Executor            common.Address
	PartnerInfo         *big.Int
	SellTokens          []common.Address
	BuyTokens           []common.Address
	SellAmounts         []*big.Int
	BuyAmounts          []*big.Int
	HooksHash           common.Hash
}

func (o *OrderV2) Schema() signature.Schema {
	return OrderSchemaV2
}

func (o *OrderV2) Message() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"taker":               o.Taker.Hex(),
		"receiver":            o.Receiver.Hex(),
		"expiry":              o.Expiry,
		"exclusivityDeadline": o.ExclusivityDeadline,
		"nonce":               o.Nonce,
		"executor":            o.Executor.Hex(),
		"partnerInfo":         o.PartnerInfo,
		"sellTokens":          signature.AddressesHex(o.SellTokens),
		"buyTokens":           signature.AddressesHex(o.BuyTokens),
		"sellAmounts":         o.SellAmounts,
		"buyAmounts":          o.BuyAmounts,
		"hooksHash":           o.HooksHash.Bytes(),
	}
}

// MapOrder converts the API payload into the typed order of the schema version.
func MapOrder(version SchemaVersion, toSign ToSign) (signature.Order, error) {
	switch version {
	case SchemaV1:
		return mapOrderV1(toSign)
	case SchemaV2:
		return mapOrderV2(toSign)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchemaVersion, version)
	}
}

// shared holds the fields present in both schema versions.
type shared struct {
	taker       common.Address
	receiver    common.Address
	expiry      *big.Int
	nonce       *big.Int
	executor    common.Address
	hooksHash   common.Hash
	sellTokens  []common.Address
	buyTokens   []common.Address
	sellAmounts []*big.Int
	buyAmounts  []*big.Int
}

func mapShared(toSign ToSign) (*shared, error) {
	var err error
	s := &shared{}

	if s.taker, err = signature.ParseAddress("taker", toSign.Taker); err != nil {
		return nil, err
	}
	if s.receiver, err = signature.ParseAddress("receiver", toSign.Receiver); err != nil {
		return nil, err
	}
	if s.expiry, err = signature.ParseUint("expiry", toSign.Expiry.String()); err != nil {
		return nil, err
	}
	if s.nonce, err = signature.ParseUint("nonce", toSign.Nonce); err != nil {
		return nil, err
	}
	if s.executor, err = signature.ParseAddress("executor", toSign.Executor); err != nil {
		return nil, err
	}
	if s.hooksHash, err = signature.ParseHash("hooksHash", toSign.HooksHash); err != nil {
		return nil, err
	}
	if s.sellTokens, err = signature.ParseAddresses("sellTokens", toSign.SellTokens); err != nil {
		return nil, err
	}
	if s.buyTokens, err = signature.ParseAddresses("buyTokens", toSign.BuyTokens); err != nil {
		return nil, err
	}
	if s.sellAmounts, err = signature.ParseUints("sellAmounts", toSign.SellAmounts); err != nil {
		return nil, err
	}
	if s.buyAmounts, err = signature.ParseUints("buyAmounts", toSign.BuyAmounts); err != nil {
		return nil, err
	}

	return s, nil
}

func mapOrderV1(toSign ToSign) (*OrderV1, error) {
	s, err := mapShared(toSign)
	if err != nil {
		return nil, err
	}

	minFillPercent := big.NewInt(0)
	if toSign.MinFillPercent != "" {
		minFillPercent, err = signature.ParseUint("minFillPercent", toSign.MinFillPercent.String())
		if err != nil {
			return nil, err
		}
	}
	sellNFTIds, err := signature.ParseUints("sellNFTIds", toSign.SellNFTIds)
	if err != nil {
		return nil, err
	}
	buyNFTIds, err := signature.ParseUints("buyNFTIds", toSign.BuyNFTIds)
	if err != nil {
		return nil, err
	}
	sellTransfers, err := signature.ParseHexBytes("sellTokenTransfers", toSign.SellTokenTransfers)
	if err != nil {
		return nil, err
	}
	buyTransfers, err := signature.ParseHexBytes("buyTokenTransfers", toSign.BuyTokenTransfers)
	if err != nil {
		return nil, err
	}

	return &OrderV1{
		Taker:              s.taker,
		Receiver:           s.receiver,
		Expiry:             s.expiry,
		Nonce:              s.nonce,
		Executor:           s.executor,
		MinFillPercent:     minFillPercent,
		HooksHash:          s.hooksHash,
		SellTokens:         s.sellTokens,
		BuyTokens:          s.buyTokens,
		SellAmounts:        s.sellAmounts,
		BuyAmounts:         s.buyAmounts,
		SellNFTIds:         sellNFTIds,
		BuyNFTIds:          buyNFTIds,
		SellTokenTransfers: sellTransfers,
		BuyTokenTransfers:  buyTransfers,
	}, nil
}

func mapOrderV2(toSign ToSign) (*OrderV2, error) {
	s, err := mapShared(toSign)
	if err != nil {
		return nil, err
	}

	exclusivityDeadline, err := signature.ParseUint("exclusivityDeadline", toSign.ExclusivityDeadline.String())
	if err != nil {
		return nil, err
	}
	partnerInfo, err := signature.ParseUint("partnerInfo", toSign.PartnerInfo.String())
	if err != nil {
		return nil, err
	}

	return &OrderV2{
		Taker:               s.taker,
		Receiver:            s.receiver,
		Expiry:              s.expiry,
		ExclusivityDeadline: exclusivityDeadline,
		Nonce:               s.nonce,
		Executor:            s.executor,
		PartnerInfo:         partnerInfo,
		SellTokens:          s.sellTokens,
		BuyTokens:           s.buyTokens,
		SellAmounts:         s.sellAmounts,
		BuyAmounts:          s.buyAmounts,
		HooksHash:           s.hooksHash,
	}, nil
}
