// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
	hconsts "github.com/ava-labs/hypersdk/consts"
	vconsts "github.com/lume-labs/vaultvm/consts"

	"github.com/lume-labs/vaultvm/external"
)

// Vault ledger entry layout:
//
//	[vaultEntryTag] + [owner: codec.AddressLen] + [proof: 1] + [domains: u64]
const vaultEntrySize = hconsts.ByteLen + codec.AddressLen + hconsts.ByteLen + hconsts.Uint64Len

// VaultAddress derives the vault controlled by [owner]. The proof byte is
// stored in the entry so later operations can re-assert the vault's signing
// authority without re-searching.
func VaultAddress(owner codec.Address) (codec.Address, uint8, error) {
	id, proof, err := external.DeriveAddress(VaultSeed, owner[:])
	if err != nil {
		return codec.EmptyAddress, 0, err
	}
	return codec.CreateAddress(vconsts.VaultID, id), proof, nil
}

// VaultSeeds is the seed material that re-derives a vault identity. Handed
// to external calls the vault must authorize.
func VaultSeeds(owner codec.Address, proof uint8) [][]byte {
	return [][]byte{VaultSeed, owner[:], {proof}}
}

// VerifyVaultAddress reports whether [vault] re-derives from [owner] under
// [proof].
func VerifyVaultAddress(vault codec.Address, owner codec.Address, proof uint8) bool {
	if vault[0] != vconsts.VaultID {
		return false
	}
	var id ids.ID
	copy(id[:], vault[1:])
	return external.VerifyDerivation(id, proof, VaultSeed, owner[:])
}

// [vaultPrefix] + [vault address]
func VaultKey(vault codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = vaultPrefix
	copy(k[1:1+codec.AddressLen], vault[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], VaultChunks)
	return k
}

func SetVault(
	ctx context.Context,
	mu state.Mutable,
	vault codec.Address,
	owner codec.Address,
	proof uint8,
	domains uint64,
) error {
	k := VaultKey(vault)
	v := make([]byte, vaultEntrySize)
	v[0] = vaultEntryTag
	copy(v[hconsts.ByteLen:], owner[:])
	v[hconsts.ByteLen+codec.AddressLen] = proof
	binary.BigEndian.PutUint64(v[hconsts.ByteLen+codec.AddressLen+hconsts.ByteLen:], domains)
	return mu.Insert(ctx, k, v)
}

func GetVault(
	ctx context.Context,
	im state.Immutable,
	vault codec.Address,
) (codec.Address, uint8, uint64, error) {
	k := VaultKey(vault)
	v, err := im.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, 0, 0, err
	}
	return innerGetVault(v)
}

// Used to serve RPC queries
func GetVaultFromState(
	ctx context.Context,
	f ReadState,
	vault codec.Address,
) (codec.Address, uint8, uint64, error) {
	k := VaultKey(vault)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, 0, 0, errs[0]
	}
	return innerGetVault(values[0])
}

func innerGetVault(v []byte) (codec.Address, uint8, uint64, error) {
	if len(v) != vaultEntrySize || v[0] != vaultEntryTag {
		return codec.EmptyAddress, 0, 0, ErrInvalidVaultEntry
	}
	owner := codec.Address(v[hconsts.ByteLen : hconsts.ByteLen+codec.AddressLen])
	proof := v[hconsts.ByteLen+codec.AddressLen]
	domains := binary.BigEndian.Uint64(v[hconsts.ByteLen+codec.AddressLen+hconsts.ByteLen:])
	return owner, proof, domains, nil
}

func VaultExists(
	ctx context.Context,
	im state.Immutable,
	vault codec.Address,
) bool {
	v, err := im.GetValue(ctx, VaultKey(vault))
	return v != nil && err == nil
}

// AddDomain bumps the custody counter by one. Overflow aborts instead of
// wrapping.
func AddDomain(
	ctx context.Context,
	mu state.Mutable,
	vault codec.Address,
) (uint64, error) {
	owner, proof, domains, err := GetVault(ctx, mu, vault)
	if err != nil {
		return 0, err
	}
	ndomains, err := smath.Add(domains, 1)
	if err != nil {
		return 0, ErrTooManyDomains
	}
	return ndomains, SetVault(ctx, mu, vault, owner, proof, ndomains)
}

// SubDomain drops the custody counter by one. An empty vault fails with
// ErrNoDomains and stays at zero.
func SubDomain(
	ctx context.Context,
	mu state.Mutable,
	vault codec.Address,
) (uint64, error) {
	owner, proof, domains, err := GetVault(ctx, mu, vault)
	if err != nil {
		return 0, err
	}
	if domains == 0 {
		return 0, ErrNoDomains
	}
	ndomains := domains - 1
	return ndomains, SetVault(ctx, mu, vault, owner, proof, ndomains)
}
