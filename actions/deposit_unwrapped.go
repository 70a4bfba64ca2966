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

var _ chain.Action = (*DepositUnwrappedDomain)(nil)

// DepositUnwrappedDomain reassigns an unwrapped registry entry from the
// actor to the vault and bumps the custody counter. The unwrapped and
// tokenized paths are mutually exclusive per domain: a domain is one or the
// other, never both.
type DepositUnwrappedDomain struct {
	Vault  codec.Address `serialize:"true" json:"vault"`
	Domain ids.ID        `serialize:"true" json:"domain"`

	programs *external.Programs
}

func NewDepositUnwrappedDomain(programs *external.Programs) *DepositUnwrappedDomain {
	return &DepositUnwrappedDomain{programs: programs}
}

func (*DepositUnwrappedDomain) GetTypeID() uint8 {
	return consts.DepositUnwrappedDomainID
}

func (d *DepositUnwrappedDomain) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(d.Vault)): state.Read | state.Write,
	}
}

func (*DepositUnwrappedDomain) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (d *DepositUnwrappedDomain) Execute(
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
	if err := d.programs.TransferDomainOwnership(
		ctx,
		d.Domain,
		external.AccountID(d.Vault),
		actorSigner(actor),
	); err != nil {
		return nil, fmt.Errorf("transfer domain ownership: %w", err)
	}
	domains, err := storage.AddDomain(ctx, mu, d.Vault)
	if err != nil {
		return nil, err
	}
	return &DepositUnwrappedDomainResult{Domains: domains}, nil
}

func (*DepositUnwrappedDomain) ComputeUnits(chain.Rules) uint64 {
	return DepositUnwrappedDomainComputeUnits
}

func (*DepositUnwrappedDomain) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*DepositUnwrappedDomain) Size() int {
	return codec.AddressLen + ids.IDLen
}

func (d *DepositUnwrappedDomain) Marshal(p *codec.Packer) {
	p.PackAddress(d.Vault)
	p.PackID(d.Domain)
}

func UnmarshalDepositUnwrappedDomain(programs *external.Programs) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewDepositUnwrappedDomain(programs)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Domain)
		return action, p.Err()
	}
}

var _ codec.Typed = (*DepositUnwrappedDomainResult)(nil)

type DepositUnwrappedDomainResult struct {
	Domains uint64 `serialize:"true" json:"domains"`
}

func (*DepositUnwrappedDomainResult) GetTypeID() uint8 {
	return consts.DepositUnwrappedDomainID
}
