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

var _ chain.Action = (*WithdrawUnwrappedDomain)(nil)

// WithdrawUnwrappedDomain reassigns an unwrapped registry entry from the
// vault back to the actor and drops the custody counter. The vault signs as
// the current owner via its derivation proof.
type WithdrawUnwrappedDomain struct {
	Vault  codec.Address `serialize:"true" json:"vault"`
	Domain ids.ID        `serialize:"true" json:"domain"`

	programs *external.Programs
}

func NewWithdrawUnwrappedDomain(programs *external.Programs) *WithdrawUnwrappedDomain {
	return &WithdrawUnwrappedDomain{programs: programs}
}

func (*WithdrawUnwrappedDomain) GetTypeID() uint8 {
	return consts.WithdrawUnwrappedDomainID
}

func (w *WithdrawUnwrappedDomain) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(w.Vault)): state.Read | state.Write,
	}
}

func (*WithdrawUnwrappedDomain) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (w *WithdrawUnwrappedDomain) Execute(
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
	if err := w.programs.TransferDomainOwnership(
		ctx,
		w.Domain,
		external.AccountID(actor),
		sess.signer(),
	); err != nil {
		return nil, fmt.Errorf("transfer domain ownership: %w", err)
	}
	domains, err := storage.SubDomain(ctx, mu, w.Vault)
	if err != nil {
		return nil, err
	}
	return &WithdrawUnwrappedDomainResult{Domains: domains}, nil
}

func (*WithdrawUnwrappedDomain) ComputeUnits(chain.Rules) uint64 {
	return WithdrawUnwrappedDomainComputeUnits
}

func (*WithdrawUnwrappedDomain) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*WithdrawUnwrappedDomain) Size() int {
	return codec.AddressLen + ids.IDLen
}

func (w *WithdrawUnwrappedDomain) Marshal(p *codec.Packer) {
	p.PackAddress(w.Vault)
	p.PackID(w.Domain)
}

func UnmarshalWithdrawUnwrappedDomain(programs *external.Programs) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewWithdrawUnwrappedDomain(programs)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Domain)
		return action, p.Err()
	}
}

var _ codec.Typed = (*WithdrawUnwrappedDomainResult)(nil)

type WithdrawUnwrappedDomainResult struct {
	Domains uint64 `serialize:"true" json:"domains"`
}

func (*WithdrawUnwrappedDomainResult) GetTypeID() uint8 {
	return consts.WithdrawUnwrappedDomainID
}
