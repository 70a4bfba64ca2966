// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"
)

// Token service opcodes.
const (
	opCreateHoldingAccount uint8 = 1
	opTransferChecked      uint8 = 12
)

// Domain assets move as unique, indivisible units.
const (
	domainTokenAmount   uint64 = 1
	domainTokenDecimals uint8  = 0
)

type transferCheckedPayload struct {
	Amount   uint64
	Decimals uint8
}

// TransferDomainToken moves one unit of [mint] from [from] to [to]. The
// authority is the user's ordinary signature on deposit and the vault's
// derivation proof on withdrawal; the builder does not care which.
func (p *Programs) TransferDomainToken(ctx context.Context, from, mint, to ids.ID, authority Signer) error {
	body, err := borsh.Serialize(transferCheckedPayload{
		Amount:   domainTokenAmount,
		Decimals: domainTokenDecimals,
	})
	if err != nil {
		return err
	}
	ix := Instruction{
		Program: p.token,
		Accounts: []AccountMeta{
			{Key: from, Writable: true},
			{Key: mint},
			{Key: to, Writable: true},
			{Key: authority.Key, Signer: true},
		},
		Data: append([]byte{opTransferChecked}, body...),
	}
	return p.invoke(ctx, ix, authority)
}

// CreateHoldingAccount allocates [holding] for [mint] with [owner] as its
// authority. The payer funds the allocation; the owner is a non-signing
// subject.
func (p *Programs) CreateHoldingAccount(ctx context.Context, payer Signer, holding, owner, mint ids.ID) error {
	ix := Instruction{
		Program: p.token,
		Accounts: []AccountMeta{
			{Key: payer.Key, Signer: true, Writable: true},
			{Key: holding, Writable: true},
			{Key: owner},
			{Key: mint},
			{Key: SystemProgram},
		},
		Data: []byte{opCreateHoldingAccount},
	}
	return p.invoke(ctx, ix, payer)
}
