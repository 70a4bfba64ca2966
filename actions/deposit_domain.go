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

var _ chain.Action = (*DepositDomain)(nil)

// DepositDomain moves one tokenized domain from the actor's holding account
// into the vault's and bumps the custody counter. The actor signs the token
// transfer as an ordinary authority.
type DepositDomain struct {
	Vault        codec.Address `serialize:"true" json:"vault"`
	Mint         ids.ID        `serialize:"true" json:"mint"`
	UserHolding  ids.ID        `serialize:"true" json:"userHolding"`
	VaultHolding ids.ID        `serialize:"true" json:"vaultHolding"`

	programs *external.Programs
}

func NewDepositDomain(programs *external.Programs) *DepositDomain {
	return &DepositDomain{programs: programs}
}

func (*DepositDomain) GetTypeID() uint8 {
	return consts.DepositDomainID
}

func (d *DepositDomain) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(d.Vault)): state.Read | state.Write,
	}
}

func (*DepositDomain) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (d *DepositDomain) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if _, err := openVault(ctx, mu, actor, d.Vault); err != nil {
		return nil, err
	}
	if err := d.programs.TransferDomainToken(
		ctx,
		d.UserHolding,
		d.Mint,
		d.VaultHolding,
		actorSigner(actor),
	); err != nil {
		return nil, fmt.Errorf("transfer domain token: %w", err)
	}
	domains, err := storage.AddDomain(ctx, mu, d.Vault)
	if err != nil {
		return nil, err
	}
	return &DepositDomainResult{Domains: domains}, nil
}

func (*DepositDomain) ComputeUnits(chain.Rules) uint64 {
	return DepositDomainComputeUnits
}

func (*DepositDomain) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*DepositDomain) Size() int {
	return codec.AddressLen + 3*ids.IDLen
}

func (d *DepositDomain) Marshal(p *codec.Packer) {
	p.PackAddress(d.Vault)
	p.PackID(d.Mint)
	p.PackID(d.UserHolding)
	p.PackID(d.VaultHolding)
}

func UnmarshalDepositDomain(programs *external.Programs) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewDepositDomain(programs)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Mint)
		p.UnpackID(true, &action.UserHolding)
		p.UnpackID(true, &action.VaultHolding)
		return action, p.Err()
	}
}

var _ codec.Typed = (*DepositDomainResult)(nil)

type DepositDomainResult struct {
	Domains uint64 `serialize:"true" json:"domains"`
}

func (*DepositDomainResult) GetTypeID() uint8 {
	return consts.DepositDomainID
}
