// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/requester"
)

var _ Invoker = (*RPCInvoker)(nil)

// RPCInvoker forwards instructions to the gateway that fronts the token,
// registry and records services. It is the production Invoker; tests use a
// recording one.
type RPCInvoker struct {
	requester *requester.EndpointRequester
}

func NewRPCInvoker(uri string, name string) *RPCInvoker {
	uri = strings.TrimSuffix(uri, "/")
	return &RPCInvoker{requester: requester.New(uri, name)}
}

type InvokeArgs struct {
	Instruction Instruction `json:"instruction"`
	Signers     []Signer    `json:"signers"`
}

type InvokeReply struct{}

func (i *RPCInvoker) Invoke(ctx context.Context, ix Instruction, signers ...Signer) error {
	return i.requester.SendRequest(
		ctx,
		"invoke",
		&InvokeArgs{
			Instruction: ix,
			Signers:     signers,
		},
		new(InvokeReply),
	)
}
