// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
)

func TestVaultAddressDeterminism(t *testing.T) {
	require := require.New(t)

	owner := codectest.NewRandomAddress()
	vault, proof, err := VaultAddress(owner)
	require.NoError(err)

	again, againProof, err := VaultAddress(owner)
	require.NoError(err)
	require.Equal(vault, again)
	require.Equal(proof, againProof)

	require.True(VerifyVaultAddress(vault, owner, proof))

	// A different owner or proof byte must not verify.
	other := codectest.NewRandomAddress()
	require.False(VerifyVaultAddress(vault, other, proof))
	require.False(VerifyVaultAddress(vault, owner, proof^0x01))
}

func TestVaultRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	vault, proof, err := VaultAddress(owner)
	require.NoError(err)

	require.False(VaultExists(ctx, store, vault))
	require.NoError(SetVault(ctx, store, vault, owner, proof, 0))
	require.True(VaultExists(ctx, store, vault))

	gotOwner, gotProof, domains, err := GetVault(ctx, store, vault)
	require.NoError(err)
	require.Equal(owner, gotOwner)
	require.Equal(proof, gotProof)
	require.Zero(domains)
}

func TestVaultDomainCounter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	vault, proof, err := VaultAddress(owner)
	require.NoError(err)
	require.NoError(SetVault(ctx, store, vault, owner, proof, 0))

	domains, err := AddDomain(ctx, store, vault)
	require.NoError(err)
	require.Equal(uint64(1), domains)

	domains, err = AddDomain(ctx, store, vault)
	require.NoError(err)
	require.Equal(uint64(2), domains)

	domains, err = SubDomain(ctx, store, vault)
	require.NoError(err)
	require.Equal(uint64(1), domains)

	domains, err = SubDomain(ctx, store, vault)
	require.NoError(err)
	require.Zero(domains)

	// The floor holds and the stored counter does not move.
	_, err = SubDomain(ctx, store, vault)
	require.ErrorIs(err, ErrNoDomains)
	_, _, domains, err = GetVault(ctx, store, vault)
	require.NoError(err)
	require.Zero(domains)
}

func TestVaultCounterOverflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	vault, proof, err := VaultAddress(owner)
	require.NoError(err)
	require.NoError(SetVault(ctx, store, vault, owner, proof, ^uint64(0)))

	_, err = AddDomain(ctx, store, vault)
	require.ErrorIs(err, ErrTooManyDomains)

	// Saturated, not wrapped.
	_, _, domains, err := GetVault(ctx, store, vault)
	require.NoError(err)
	require.Equal(^uint64(0), domains)
}

func TestVaultEntryTagChecked(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	vault, _, err := VaultAddress(owner)
	require.NoError(err)

	require.NoError(store.Insert(ctx, VaultKey(vault), []byte{0xff, 0x01, 0x02}))
	_, _, _, err = GetVault(ctx, store, vault)
	require.ErrorIs(err, ErrInvalidVaultEntry)
}
