// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"

	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/external/externaltest"
	"github.com/lume-labs/vaultvm/storage"
)

func TestDepositDomainGuards(t *testing.T) {
	require := require.New(t)

	rec := externaltest.NewInvoker()
	programs := testPrograms(t, rec)

	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()
	vault := setupVault(t, store, actor, 0)

	stranger := codectest.NewRandomAddress()

	// An entry stored at an address that does not re-derive from its owner.
	forged := codectest.NewRandomAddress()
	forgedOwner := codectest.NewRandomAddress()
	_, proof, err := storage.VaultAddress(forgedOwner)
	require.NoError(err)
	require.NoError(storage.SetVault(context.Background(), store, forged, forgedOwner, proof, 0))

	tests := []chaintest.ActionTest{
		{
			Name:  "missing vault",
			Actor: actor,
			Action: &DepositDomain{
				Vault:    codectest.NewRandomAddress(),
				programs: programs,
			},
			ExpectedErr: ErrVaultMissing,
			State:       store,
		},
		{
			Name:  "actor is not the owner",
			Actor: stranger,
			Action: &DepositDomain{
				Vault:    vault,
				programs: programs,
			},
			ExpectedErr: ErrNotVaultOwner,
			State:       store,
		},
		{
			Name:  "entry does not re-derive",
			Actor: forgedOwner,
			Action: &DepositDomain{
				Vault:    forged,
				programs: programs,
			},
			ExpectedErr: ErrVaultMismatch,
			State:       store,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}

	// Every guard fires before the external boundary is touched.
	require.Empty(rec.Calls)
}

func TestDepositDomain(t *testing.T) {
	require := require.New(t)

	rec := externaltest.NewInvoker()
	programs := testPrograms(t, rec)

	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()
	vault := setupVault(t, store, actor, 0)

	mint := ids.GenerateTestID()
	userHolding := ids.GenerateTestID()
	vaultHolding := ids.GenerateTestID()

	tt := chaintest.ActionTest{
		Name:  "deposit bumps the counter",
		Actor: actor,
		Action: &DepositDomain{
			Vault:        vault,
			Mint:         mint,
			UserHolding:  userHolding,
			VaultHolding: vaultHolding,
			programs:     programs,
		},
		ExpectedOutputs: &DepositDomainResult{Domains: 1},
		State:           store,
	}
	tt.Run(context.Background(), t)

	require.Len(rec.Calls, 1)
	call := rec.Last()
	require.Equal(userHolding, call.Instruction.Accounts[0].Key)
	require.Equal(vaultHolding, call.Instruction.Accounts[2].Key)

	// The actor authorizes with a plain signature, no derivation seeds.
	require.Len(call.Signers, 1)
	require.Equal(external.AccountID(actor), call.Signers[0].Key)
	require.Empty(call.Signers[0].Seeds)
}

func TestDepositDomainExternalFailure(t *testing.T) {
	require := require.New(t)

	mockErr := errors.New("holding account frozen")
	rec := &externaltest.Invoker{FailAt: 1, Err: mockErr}
	programs := testPrograms(t, rec)

	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()
	vault := setupVault(t, store, actor, 0)

	tt := chaintest.ActionTest{
		Name:  "external failure leaves the counter alone",
		Actor: actor,
		Action: &DepositDomain{
			Vault:        vault,
			Mint:         ids.GenerateTestID(),
			UserHolding:  ids.GenerateTestID(),
			VaultHolding: ids.GenerateTestID(),
			programs:     programs,
		},
		ExpectedErr: mockErr,
		State:       store,
	}
	tt.Run(context.Background(), t)

	_, _, domains, err := storage.GetVault(context.Background(), store, vault)
	require.NoError(err)
	require.Zero(domains)
}
