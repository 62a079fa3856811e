// Package signature checks personal-sign signatures produced by consumer
// wallets over a message and the consumer's current nonce.
package signature

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Outcome is the result of a signature check. A failed check is a normal
// outcome with a reason, not an error.
type Outcome struct {
	Valid  bool
	Reason string
}

const signatureLength = 65

// Verify recovers the signer of the personal-sign digest over message+nonce
// and compares it against the claimed address.
func Verify(address, signatureHex, message, nonce string) Outcome {
	if !common.IsHexAddress(address) {
		return Outcome{Reason: fmt.Sprintf("invalid signer address %q", address)}
	}

	sig, err := hexutil.Decode(signatureHex)
	if err != nil {
		return Outcome{Reason: fmt.Sprintf("decode signature: %v", err)}
	}
	if len(sig) != signatureLength {
		return Outcome{Reason: fmt.Sprintf("signature must be %d bytes, got %d", signatureLength, len(sig))}
	}

	// Wallets emit the recovery id as 27/28; crypto.SigToPub expects 0/1.
	if sig[signatureLength-1] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[signatureLength-1] -= 27
	}

	digest := accounts.TextHash([]byte(message + nonce))
	pub, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return Outcome{Reason: fmt.Sprintf("recover public key: %v", err)}
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if recovered != common.HexToAddress(address) {
		return Outcome{Reason: fmt.Sprintf("signature was made by %s, not %s", recovered.Hex(), address)}
	}
	return Outcome{Valid: true}
}
