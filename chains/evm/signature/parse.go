package signature

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseUint parses a decimal string into an unsigned integer.
func ParseUint(field string, value string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok || i.Sign() < 0 {
		return nil, &MalformedPayloadError{Field: field, Value: value}
	}
	return i, nil
}

// ParseUints parses a list of decimal strings keeping their order.
func ParseUints(field string, values []string) ([]*big.Int, error) {
	ints := make([]*big.Int, len(values))
	for i, v := range values {
		parsed, err := ParseUint(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		ints[i] = parsed
	}
	return ints, nil
}

// ParseUintMatrix parses a nested list of decimal strings preserving both outer and inner order.
func ParseUintMatrix(field string, values [][]string) ([][]*big.Int, error) {
	matrix := make([][]*big.Int, len(values))
	for i, row := range values {
		parsed, err := ParseUints(fmt.Sprintf("%s[%d]", field, i), row)
		if err != nil {
			return nil, err
		}
		matrix[i] = parsed
	}
	return matrix, nil
}

// ParseAddress validates a hex address and returns it checksummed.
func ParseAddress(field string, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, &MalformedPayloadError{Field: field, Value: value}
	}
	return common.HexToAddress(value), nil
}

// ParseAddresses validates a list of hex addresses keeping their order.
func ParseAddresses(field string, values []string) ([]common.Address, error) {
	addresses := make([]common.Address, len(values))
	for i, v := range values {
		a, err := ParseAddress(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		addresses[i] = a
	}
	return addresses, nil
}

// ParseAddressMatrix validates a nested list of hex addresses.
func ParseAddressMatrix(field string, values [][]string) ([][]common.Address, error) {
	matrix := make([][]common.Address, len(values))
	for i, row := range values {
		parsed, err := ParseAddresses(fmt.Sprintf("%s[%d]", field, i), row)
		if err != nil {
			return nil, err
		}
		matrix[i] = parsed
	}
	return matrix, nil
}

// ParseHexBytes decodes a 0x prefixed hex string into raw bytes.
func ParseHexBytes(field string, value string) ([]byte, error) {
	if value == "" || value == "0x" {
		return []byte{}, nil
	}

	b, err := hexutil.Decode(value)
	if err != nil {
		return nil, &MalformedPayloadError{Field: field, Value: value, Err: err}
	}
	return b, nil
}

// ParseHash decodes a 32 byte hex string.
func ParseHash(field string, value string) (common.Hash, error) {
	b, err := ParseHexBytes(field, value)
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) != common.HashLength {
		return common.Hash{}, &MalformedPayloadError{Field: field, Value: value, Err: fmt.Errorf("expected %d bytes, got %d", common.HashLength, len(b))}
	}
	return common.BytesToHash(b), nil
}

// Hex helpers used when placing typed values into a typed-data message.

func AddressesHex(addresses []common.Address) []string {
	hex := make([]string, len(addresses))
	for i, a := range addresses {
		hex[i] = a.Hex()
	}
	return hex
}

func AddressMatrixHex(matrix [][]common.Address) [][]string {
	hex := make([][]string, len(matrix))
	for i, row := range matrix {
		hex[i] = AddressesHex(row)
	}
	return hex
}
