// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/storage"
)

func TestInitializeVault(t *testing.T) {
	actor := codectest.NewRandomAddress()
	vault, proof, err := storage.VaultAddress(actor)
	require.NoError(t, err)

	store := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name:   "first initialization creates the entry",
			Actor:  actor,
			Action: &InitializeVault{},
			ExpectedOutputs: &InitializeVaultResult{
				Vault: vault,
				Proof: proof,
			},
			State: store,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				owner, gotProof, domains, err := storage.GetVault(ctx, m, vault)
				require.NoError(err)
				require.Equal(actor, owner)
				require.Equal(proof, gotProof)
				require.Zero(domains)
			},
		},
		{
			Name:        "second initialization fails",
			Actor:       actor,
			Action:      &InitializeVault{},
			ExpectedErr: ErrVaultAlreadyExists,
			State:       store,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
