// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"

	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/external/externaltest"
)

func TestInitVaultHolding(t *testing.T) {
	require := require.New(t)

	rec := externaltest.NewInvoker()
	programs := testPrograms(t, rec)

	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()
	vault := setupVault(t, store, actor, 0)

	mint := ids.GenerateTestID()
	holding := ids.GenerateTestID()

	tests := []chaintest.ActionTest{
		{
			Name:  "unknown vault",
			Actor: actor,
			Action: &InitVaultHolding{
				Vault:    codectest.NewRandomAddress(),
				Mint:     mint,
				Holding:  holding,
				programs: programs,
			},
			ExpectedErr: ErrVaultMissing,
			State:       store,
		},
		{
			Name:  "holding account allocated",
			Actor: actor,
			Action: &InitVaultHolding{
				Vault:    vault,
				Mint:     mint,
				Holding:  holding,
				programs: programs,
			},
			ExpectedOutputs: &InitVaultHoldingResult{Holding: holding},
			State:           store,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}

	require.Len(rec.Calls, 1)
	call := rec.Last()
	// [opcode=1]: create holding account.
	require.Equal([]byte{1}, call.Instruction.Data)

	// The actor pays; the vault is the authority without signing.
	require.Equal(external.AccountID(actor), call.Signers[0].Key)
	vaultKey := external.AccountID(vault)
	for _, account := range call.Instruction.Accounts {
		if account.Key == vaultKey {
			require.False(account.Signer)
		}
	}
}
