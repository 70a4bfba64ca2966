// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import "errors"

var (
	ErrDerivationExhausted = errors.New("derivation space exhausted")
	ErrMissingSigner       = errors.New("instruction is missing a required signer")
)
