// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/storage"
)

var _ chain.Action = (*InitVaultHolding)(nil)

// InitVaultHolding allocates the vault's holding account for a tokenized
// domain mint. The actor pays for the allocation; the vault is the holding
// account's authority without signing anything.
type InitVaultHolding struct {
	Vault   codec.Address `serialize:"true" json:"vault"`
	Mint    ids.ID        `serialize:"true" json:"mint"`
	Holding ids.ID        `serialize:"true" json:"holding"`

	programs *external.Programs
}

func NewInitVaultHolding(programs *external.Programs) *InitVaultHolding {
	return &InitVaultHolding{programs: programs}
}

func (*InitVaultHolding) GetTypeID() uint8 {
	return consts.InitVaultHoldingID
}

func (i *InitVaultHolding) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(i.Vault)): state.Read,
	}
}

func (*InitVaultHolding) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (i *InitVaultHolding) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if _, err := openVault(ctx, mu, actor, i.Vault); err != nil {
		return nil, err
	}
	if err := i.programs.CreateHoldingAccount(
		ctx,
		actorSigner(actor),
		i.Holding,
		external.AccountID(i.Vault),
		i.Mint,
	); err != nil {
		return nil, fmt.Errorf("create holding account: %w", err)
	}
	return &InitVaultHoldingResult{Holding: i.Holding}, nil
}

func (*InitVaultHolding) ComputeUnits(chain.Rules) uint64 {
	return InitVaultHoldingComputeUnits
}

func (*InitVaultHolding) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*InitVaultHolding) Size() int {
	return codec.AddressLen + 2*ids.IDLen
}

func (i *InitVaultHolding) Marshal(p *codec.Packer) {
	p.PackAddress(i.Vault)
	p.PackID(i.Mint)
	p.PackID(i.Holding)
}

func UnmarshalInitVaultHolding(programs *external.Programs) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewInitVaultHolding(programs)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Mint)
		p.UnpackID(true, &action.Holding)
		return action, p.Err()
	}
}

var _ codec.Typed = (*InitVaultHoldingResult)(nil)

type InitVaultHoldingResult struct {
	Holding ids.ID `serialize:"true" json:"holding"`
}

func (*InitVaultHoldingResult) GetTypeID() uint8 {
	return consts.InitVaultHoldingID
}
