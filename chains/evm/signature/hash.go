package signature

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Assemble composes the domain, the domain separator schema, the order schema and the
// message into one typed-data document. It has no side effects and returns
// field for field identical documents for identical inputs.
func Assemble(domain apitypes.TypedDataDomain, schema Schema, message apitypes.TypedDataMessage) apitypes.TypedData {
	msg := make(apitypes.TypedDataMessage, len(message))
	for k, v := range message {
		msg[k] = v
	}

	return apitypes.TypedData{
		Types:       schema.Types(),
		PrimaryType: schema.Name,
		Domain:      domain,
		Message:     msg,
	}
}

// Digest calculates the hash that has to be signed for the typed-data document.
func Digest(typedData apitypes.TypedData) ([]byte, error) {
	domainSeparator, err := typedData.HashStruct(EIP712_DOMAIN, typedData.Domain.Map())
	if err != nil {
		return []byte{}, fmt.Errorf("failed to hash domain: %w", err)
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, fmt.Errorf("failed to hash message: %w", err)
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256(rawData), nil
}

// RecoverSigner returns the address that produced the signature over the digest.
// Both 0/1 and 27/28 recovery ids are accepted.
func RecoverSigner(digest []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pubkey, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("ecrecover: %w", err)
	}

	return crypto.PubkeyToAddress(*pubkey), nil
}

// VerifySignature checks that the signature over the typed-data document was made by signer.
func VerifySignature(typedData apitypes.TypedData, sig []byte, signer common.Address) (bool, error) {
	digest, err := Digest(typedData)
	if err != nil {
		return false, err
	}

	recovered, err := RecoverSigner(digest, sig)
	if err != nil {
		return false, err
	}

	return recovered == signer, nil
}
