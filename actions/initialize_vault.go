// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/storage"
)

var _ chain.Action = (*InitializeVault)(nil)

// InitializeVault creates the actor's vault ledger entry at its derived
// address. A vault is created exactly once per owner and never closed.
type InitializeVault struct{}

func (*InitializeVault) GetTypeID() uint8 {
	return consts.InitializeVaultID
}

func (*InitializeVault) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	vault, _, err := storage.VaultAddress(actor)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.VaultKey(vault)): state.All,
	}
}

func (*InitializeVault) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (*InitializeVault) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	vault, proof, err := storage.VaultAddress(actor)
	if err != nil {
		return nil, err
	}
	if storage.VaultExists(ctx, mu, vault) {
		return nil, ErrVaultAlreadyExists
	}
	if err := storage.SetVault(ctx, mu, vault, actor, proof, 0); err != nil {
		return nil, err
	}
	return &InitializeVaultResult{Vault: vault, Proof: proof}, nil
}

func (*InitializeVault) ComputeUnits(chain.Rules) uint64 {
	return InitializeVaultComputeUnits
}

func (*InitializeVault) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}

var _ codec.Typed = (*InitializeVaultResult)(nil)

type InitializeVaultResult struct {
	Vault codec.Address `serialize:"true" json:"vault"`
	Proof uint8         `serialize:"true" json:"proof"`
}

func (*InitializeVaultResult) GetTypeID() uint8 {
	return consts.InitializeVaultID
}
