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

var _ chain.Action = (*WithdrawDomain)(nil)

// WithdrawDomain moves one tokenized domain from the vault's holding account
// back to the actor's and drops the custody counter. The vault authorizes
// the transfer via its derivation proof; it has no signature to give.
type WithdrawDomain struct {
	Vault        codec.Address `serialize:"true" json:"vault"`
	Mint         ids.ID        `serialize:"true" json:"mint"`
	VaultHolding ids.ID        `serialize:"true" json:"vaultHolding"`
	UserHolding  ids.ID        `serialize:"true" json:"userHolding"`

	programs *external.Programs
}

func NewWithdrawDomain(programs *external.Programs) *WithdrawDomain {
	return &WithdrawDomain{programs: programs}
}

func (*WithdrawDomain) GetTypeID() uint8 {
	return consts.WithdrawDomainID
}

func (w *WithdrawDomain) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(w.Vault)): state.Read | state.Write,
	}
}

func (*WithdrawDomain) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (w *WithdrawDomain) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	sess, err := openVault(ctx, mu, actor, w.Vault)
	if err != nil {
		return nil, err
	}
	if sess.domains == 0 {
		return nil, storage.ErrNoDomains
	}
	if err := w.programs.TransferDomainToken(
		ctx,
		w.VaultHolding,
		w.Mint,
		w.UserHolding,
		sess.signer(),
	); err != nil {
		return nil, fmt.Errorf("transfer domain token: %w", err)
	}
	domains, err := storage.SubDomain(ctx, mu, w.Vault)
	if err != nil {
		return nil, err
	}
	return &WithdrawDomainResult{Domains: domains}, nil
}

func (*WithdrawDomain) ComputeUnits(chain.Rules) uint64 {
	return WithdrawDomainComputeUnits
}

func (*WithdrawDomain) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*WithdrawDomain) Size() int {
	return codec.AddressLen + 3*ids.IDLen
}

func (w *WithdrawDomain) Marshal(p *codec.Packer) {
	p.PackAddress(w.Vault)
	p.PackID(w.Mint)
	p.PackID(w.VaultHolding)
	p.PackID(w.UserHolding)
}

func UnmarshalWithdrawDomain(programs *external.Programs) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewWithdrawDomain(programs)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Mint)
		p.UnpackID(true, &action.VaultHolding)
		p.UnpackID(true, &action.UserHolding)
		return action, p.Err()
	}
}

var _ codec.Typed = (*WithdrawDomainResult)(nil)

type WithdrawDomainResult struct {
	Domains uint64 `serialize:"true" json:"domains"`
}

func (*WithdrawDomainResult) GetTypeID() uint8 {
	return consts.WithdrawDomainID
}
