// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package externaltest

import (
	"context"

	"github.com/lume-labs/vaultvm/external"
)

var _ external.Invoker = (*Invoker)(nil)

// Call is one recorded invocation.
type Call struct {
	Instruction external.Instruction
	Signers     []external.Signer
}

// Invoker records every instruction it receives and can be programmed to
// fail a specific call, counted from 1. It stands in for the host bridge in
// action tests.
type Invoker struct {
	Calls []Call

	// FailAt makes the FailAt-th Invoke return Err without recording it.
	// Zero disables failure injection.
	FailAt int
	Err    error
}

func NewInvoker() *Invoker {
	return &Invoker{}
}

func (i *Invoker) Invoke(_ context.Context, ix external.Instruction, signers ...external.Signer) error {
	if i.FailAt > 0 && len(i.Calls)+1 == i.FailAt {
		return i.Err
	}
	i.Calls = append(i.Calls, Call{Instruction: ix, Signers: signers})
	return nil
}

// Last returns the most recent recorded call.
func (i *Invoker) Last() Call {
	return i.Calls[len(i.Calls)-1]
}
