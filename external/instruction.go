// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package external is the boundary to the services that own domain records,
// resolution records and token accounts. The VM never mutates their state
// directly; it builds opcode-tagged instructions with ordered account lists
// and hands them to an Invoker. Errors coming back cross the boundary
// unchanged.
package external

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
)

// AccountMeta is one entry in an instruction's account list. Order is
// significant and fixed per opcode.
type AccountMeta struct {
	Key      ids.ID
	Signer   bool
	Writable bool
}

// Instruction is a single call into an external service.
type Instruction struct {
	Program  ids.ID
	Accounts []AccountMeta
	Data     []byte
}

// Signer identifies a party whose approval accompanies an instruction.
// Seeds are set when the party is a derived identity: the host re-derives
// the key from the seed material instead of checking a signature, which is
// the only way an identity without a keypair can authorize anything.
type Signer struct {
	Key   ids.ID
	Seeds [][]byte
}

// Derived reports whether the signer authorizes via proof-of-derivation.
func (s Signer) Derived() bool { return len(s.Seeds) > 0 }

// Invoker dispatches instructions to the external services.
type Invoker interface {
	Invoke(ctx context.Context, ix Instruction, signers ...Signer) error
}

// SystemProgram is the account-allocation service referenced by instructions
// that create external accounts.
var SystemProgram = ids.Empty

// AccountID narrows a VM address to the raw 32-byte key external services
// work with.
func AccountID(addr codec.Address) ids.ID {
	var id ids.ID
	copy(id[:], addr[1:])
	return id
}
