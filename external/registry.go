// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
)

// Registry service opcodes.
const opTransferOwnership uint8 = 2

// TransferDomainOwnership reassigns [domain] to [newOwner]. Whoever holds
// the domain right now signs as [current]: the user on deposit, the vault
// via its derivation proof on withdrawal.
//
// Wire layout: [opcode=2][newOwner: 32 bytes].
func (p *Programs) TransferDomainOwnership(ctx context.Context, domain, newOwner ids.ID, current Signer) error {
	data := make([]byte, 1+ids.IDLen)
	data[0] = opTransferOwnership
	copy(data[1:], newOwner[:])
	ix := Instruction{
		Program: p.registry,
		Accounts: []AccountMeta{
			{Key: domain, Writable: true},
			{Key: current.Key, Signer: true},
		},
		Data: data,
	}
	return p.invoke(ctx, ix, current)
}
