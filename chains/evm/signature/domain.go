package signature

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Protocol describes the signing domain of one settlement protocol line.
// Contracts holds per chain overrides of the default verifying contract and is never
// mutated after construction.
type Protocol struct {
	Name            string
	Version         string
	DefaultContract common.Address
	Contracts       map[uint64]common.Address
}

// VerifyingContract returns the settlement contract for the chain, falling back to the
// protocol default.
func (p Protocol) VerifyingContract(chainID uint64) common.Address {
	if c, ok := p.Contracts[chainID]; ok {
		return c
	}
	return p.DefaultContract
}

// Domain builds the EIP-712 domain scoping signatures to the chain deployment.
func (p Protocol) Domain(chainID uint64) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              p.Name,
		Version:           p.Version,
		ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(chainID)),
		VerifyingContract: p.VerifyingContract(chainID).Hex(),
	}
}

// Assemble builds the typed-data document for the order on the chain.
func (p Protocol) Assemble(chainID uint64, order Order) apitypes.TypedData {
	return Assemble(p.Domain(chainID), order.Schema(), order.Message())
}
