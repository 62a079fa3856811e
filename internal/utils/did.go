package utils

import "strings"

const didPrefix = "did:op:"

// IsDID reports whether s carries the did:op prefix.
func IsDID(s string) bool {
	return strings.HasPrefix(s, didPrefix)
}

// DIDToID strips the did:op prefix, returning the bare asset id.
func DIDToID(did string) string {
	return strings.TrimPrefix(did, didPrefix)
}

// IDToDID prefixes a bare asset id with did:op.
func IDToDID(id string) string {
	if IsDID(id) {
		return id
	}
	return didPrefix + Remove0x(id)
}

// NormalizeAssetID accepts either a did:op form or a raw id and returns the
// 0x-prefixed asset id used on chain.
func NormalizeAssetID(s string) string {
	if IsDID(s) {
		return Add0x(DIDToID(s))
	}
	return Add0x(s)
}

// Remove0x strips a leading 0x, if present.
func Remove0x(s string) string {
	return strings.TrimPrefix(s, "0x")
}

// Add0x prepends 0x unless already present.
func Add0x(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}
