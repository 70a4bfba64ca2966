// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"context"
	"crypto/sha256"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"
)

// Records service opcodes.
const (
	opPostRecord       uint8 = 1
	opValidateRecord   uint8 = 3
	opWriteAssociation uint8 = 6
)

// Validation flags. Freshness re-checks that the domain's current owner
// matches what the record expects; association checks that the validate
// call's verifier signer matches the stored association id.
const (
	checkFreshness   uint8 = 0x01
	checkAssociation uint8 = 0x02
)

// recordName labels posted records as resolution records.
var recordName = []byte("vault-resolution")

// hashedRecordName keys every resolution-record derivation.
var hashedRecordName = sha256.Sum256([]byte("vault-resolution-record"))

// ResolutionRecordAddress derives the resolution-record account for
// [domain] from the fixed hashed-name constant, the records service's
// central state and the domain's registry identity.
func (p *Programs) ResolutionRecordAddress(domain ids.ID) (ids.ID, error) {
	record, _, err := DeriveAddress(hashedRecordName[:], p.centralState[:], domain[:])
	return record, err
}

type postRecordPayload struct {
	Name    []byte
	Content []byte
}

// PostResolutionRecord allocates [record] and writes [content] into it. The
// payer funds the allocation and the domain owner approves the write, so
// both must sign; on the deposit path the owner is already the vault,
// signing via its derivation proof.
//
// Wire layout: [opcode=1][len:u32-LE][name][len:u32-LE][content].
func (p *Programs) PostResolutionRecord(ctx context.Context, payer Signer, record, domain ids.ID, owner Signer, content ids.ID) error {
	body, err := borsh.Serialize(postRecordPayload{
		Name:    recordName,
		Content: content[:],
	})
	if err != nil {
		return err
	}
	ix := Instruction{
		Program: p.records,
		Accounts: []AccountMeta{
			{Key: SystemProgram},
			{Key: p.registry},
			{Key: payer.Key, Signer: true, Writable: true},
			{Key: record, Writable: true},
			{Key: domain},
			{Key: owner.Key, Signer: true},
			{Key: p.centralState},
		},
		Data: append([]byte{opPostRecord}, body...),
	}
	return p.invoke(ctx, ix, payer, owner)
}

type writeAssociationPayload struct {
	AssociationID []byte
}

// WriteAssociation records [association] as the identity allowed to verify
// [record], moving it from unset to unverified-pending. Only the domain
// owner may write it.
//
// Wire layout: [opcode=6][len:u32-LE=32][associationID: 32 bytes].
func (p *Programs) WriteAssociation(ctx context.Context, record, domain ids.ID, owner Signer, association ids.ID) error {
	body, err := borsh.Serialize(writeAssociationPayload{
		AssociationID: association[:],
	})
	if err != nil {
		return err
	}
	ix := Instruction{
		Program: p.records,
		Accounts: []AccountMeta{
			{Key: p.registry},
			{Key: record, Writable: true},
			{Key: domain},
			{Key: owner.Key, Signer: true},
			{Key: p.centralState},
		},
		Data: append([]byte{opWriteAssociation}, body...),
	}
	return p.invoke(ctx, ix, owner)
}

// ValidateResolutionRecord asks the records service to re-check freshness
// and match the verifier against the stored association id, moving [record]
// to verified. The owner appears as a non-signing subject and the verifier
// signs; on the deposit path both positions hold the vault's derived
// identity.
//
// Wire layout: [opcode=3][flags: 1 byte].
func (p *Programs) ValidateResolutionRecord(ctx context.Context, record, domain ids.ID, owner ids.ID, verifier Signer) error {
	ix := Instruction{
		Program: p.records,
		Accounts: []AccountMeta{
			{Key: p.registry},
			{Key: record, Writable: true},
			{Key: domain},
			{Key: owner},
			{Key: p.centralState},
			{Key: verifier.Key, Signer: true},
		},
		Data: []byte{opValidateRecord, checkFreshness | checkAssociation},
	}
	return p.invoke(ctx, ix, verifier)
}
