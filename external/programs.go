// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
)

// Programs bundles the identities of the three external services with the
// invoker that reaches them. One Programs value is shared by every action
// that issues external calls.
type Programs struct {
	inv Invoker

	token    ids.ID
	registry ids.ID
	records  ids.ID

	// centralState is derived from the records service identity alone and
	// anchors every resolution-record derivation.
	centralState ids.ID
}

func NewPrograms(inv Invoker, token, registry, records ids.ID) (*Programs, error) {
	centralState, _, err := DeriveAddress(records[:])
	if err != nil {
		return nil, err
	}
	return &Programs{
		inv:          inv,
		token:        token,
		registry:     registry,
		records:      records,
		centralState: centralState,
	}, nil
}

// CentralState returns the records service's derived central-state identity.
func (p *Programs) CentralState() ids.ID {
	return p.centralState
}

// invoke dispatches [ix] after checking that every accompanying signer
// carries an identity. A zero-key signer would otherwise surface as an
// opaque rejection from the external service.
func (p *Programs) invoke(ctx context.Context, ix Instruction, signers ...Signer) error {
	for _, signer := range signers {
		if signer.Key == ids.Empty {
			return ErrMissingSigner
		}
	}
	return p.inv.Invoke(ctx, ix, signers...)
}
