// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/storage"
)

var _ chain.Action = (*DepositDomainWithRecord)(nil)

// DepositDomainWithRecord deposits an unwrapped domain and re-points its
// resolution record at the vault's derived identity, driving the record to
// verified. Four external calls run in strict order: transfer ownership,
// post the record, write the association proof, validate freshness and
// association. The vault signs everything after the first call via its
// derivation proof.
//
// The custody counter moves only after the fourth call succeeds. All-or-
// nothing visibility of the four calls is the enclosing transaction's to
// provide; nothing here can undo an external call once issued, so on a host
// without whole-transaction atomicity callers must re-inspect external state
// before retrying.
type DepositDomainWithRecord struct {
	Vault  codec.Address `serialize:"true" json:"vault"`
	Domain ids.ID        `serialize:"true" json:"domain"`

	log      logging.Logger
	programs *external.Programs
}

func NewDepositDomainWithRecord(programs *external.Programs, log logging.Logger) *DepositDomainWithRecord {
	if log == nil {
		log = logging.NoLog{}
	}
	return &DepositDomainWithRecord{log: log, programs: programs}
}

func (*DepositDomainWithRecord) GetTypeID() uint8 {
	return consts.DepositDomainWithRecordID
}

func (d *DepositDomainWithRecord) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(d.Vault)): state.Read | state.Write,
	}
}

func (*DepositDomainWithRecord) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

func (d *DepositDomainWithRecord) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	sess, err := openVault(ctx, mu, actor, d.Vault)
	if err != nil {
		return nil, err
	}
	record, err := d.programs.ResolutionRecordAddress(d.Domain)
	if err != nil {
		return nil, err
	}
	vaultKey := external.AccountID(d.Vault)
	vaultSigner := sess.signer()

	// Step 1: the actor, still the domain's owner, hands it to the vault.
	if err := d.programs.TransferDomainOwnership(
		ctx,
		d.Domain,
		vaultKey,
		actorSigner(actor),
	); err != nil {
		return nil, fmt.Errorf("transfer domain ownership: %w", err)
	}

	// Step 2: allocate the resolution record and point it at the vault. The
	// actor pays, the vault approves as the domain's new owner.
	if err := d.programs.PostResolutionRecord(
		ctx,
		actorSigner(actor),
		record,
		d.Domain,
		vaultSigner,
		vaultKey,
	); err != nil {
		return nil, fmt.Errorf("post resolution record: %w", err)
	}

	// Step 3: the vault asserts itself as the record's verifier, moving the
	// record to unverified-pending.
	if err := d.programs.WriteAssociation(
		ctx,
		record,
		d.Domain,
		vaultSigner,
		vaultKey,
	); err != nil {
		return nil, fmt.Errorf("write association: %w", err)
	}

	// Step 4: the vault appears both as the owner subject and as the signing
	// verifier; success moves the record to verified.
	if err := d.programs.ValidateResolutionRecord(
		ctx,
		record,
		d.Domain,
		vaultKey,
		vaultSigner,
	); err != nil {
		return nil, fmt.Errorf("validate resolution record: %w", err)
	}

	domains, err := storage.AddDomain(ctx, mu, d.Vault)
	if err != nil {
		return nil, err
	}
	log := d.log
	if log == nil {
		// Literal-built actions carry no logger.
		log = logging.NoLog{}
	}
	log.Debug("bound resolution record",
		zap.Stringer("domain", d.Domain),
		zap.Stringer("record", record),
		zap.Uint64("domains", domains),
	)
	return &DepositDomainWithRecordResult{Record: record, Domains: domains}, nil
}

func (*DepositDomainWithRecord) ComputeUnits(chain.Rules) uint64 {
	return DepositDomainWithRecordComputeUnits
}

func (*DepositDomainWithRecord) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (*DepositDomainWithRecord) Size() int {
	return codec.AddressLen + ids.IDLen
}

func (d *DepositDomainWithRecord) Marshal(p *codec.Packer) {
	p.PackAddress(d.Vault)
	p.PackID(d.Domain)
}

func UnmarshalDepositDomainWithRecord(programs *external.Programs, log logging.Logger) func(*codec.Packer) (chain.Action, error) {
	return func(p *codec.Packer) (chain.Action, error) {
		action := NewDepositDomainWithRecord(programs, log)
		p.UnpackAddress(&action.Vault)
		p.UnpackID(true, &action.Domain)
		return action, p.Err()
	}
}

var _ codec.Typed = (*DepositDomainWithRecordResult)(nil)

type DepositDomainWithRecordResult struct {
	Record  ids.ID `serialize:"true" json:"record"`
	Domains uint64 `serialize:"true" json:"domains"`
}

func (*DepositDomainWithRecordResult) GetTypeID() uint8 {
	return consts.DepositDomainWithRecordID
}
