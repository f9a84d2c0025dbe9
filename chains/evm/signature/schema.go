package signature

import (
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const EIP712_DOMAIN = "EIP712Domain"

// Schema is a named EIP-712 struct type with an ordered field list.
type Schema struct {
	Name   string
	Fields []apitypes.Type
}

// DomainSchema is the domain separator type shared by every protocol.
var DomainSchema = Schema{
	Name: EIP712_DOMAIN,
	Fields: []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

// Types returns the type set for a document whose primary type is the schema.
func (s Schema) Types() apitypes.Types {
	fields := make([]apitypes.Type, len(s.Fields))
	copy(fields, s.Fields)

	domainFields := make([]apitypes.Type, len(DomainSchema.Fields))
	copy(domainFields, DomainSchema.Fields)

	return apitypes.Types{
		EIP712_DOMAIN: domainFields,
		s.Name:        fields,
	}
}

// FieldNames returns the schema field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Order is a canonical, hash ready order of one topology.
type Order interface {
	Schema() Schema
	Message() apitypes.TypedDataMessage
}
