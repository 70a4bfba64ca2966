// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"crypto/sha256"
	"math"

	"filippo.io/edwards25519"
	"github.com/ava-labs/avalanchego/ids"
)

// DeriveAddress maps [seeds] to an identity that no keypair can sign for.
// Candidates are sha256(seeds... | proof) with the proof byte counting down
// from 255; the first digest that does not decode as an ed25519 group
// element wins. The returned proof byte makes re-derivation a single hash.
//
// Exhausting all 256 proof bytes is negligible-probability; callers must
// treat ErrDerivationExhausted as fatal rather than substitute an address.
func DeriveAddress(seeds ...[]byte) (ids.ID, uint8, error) {
	for proof := uint8(math.MaxUint8); ; proof-- {
		id := deriveCandidate(proof, seeds)
		if !onCurve(id) {
			return id, proof, nil
		}
		if proof == 0 {
			return ids.Empty, 0, ErrDerivationExhausted
		}
	}
}

// VerifyDerivation reports whether [id] re-derives from [seeds] under
// [proof].
func VerifyDerivation(id ids.ID, proof uint8, seeds ...[]byte) bool {
	return deriveCandidate(proof, seeds) == id && !onCurve(id)
}

func deriveCandidate(proof uint8, seeds [][]byte) ids.ID {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{proof})
	var id ids.ID
	copy(id[:], h.Sum(nil))
	return id
}

// Addresses on the curve have a private counterpart somewhere in key space,
// so they are rejected as derived identities.
func onCurve(id ids.ID) bool {
	_, err := new(edwards25519.Point).SetBytes(id[:])
	return err == nil
}
