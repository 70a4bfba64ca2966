// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/requester"

	"github.com/lume-labs/vaultvm/consts"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.DefaultGenesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{requester: req}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.DefaultGenesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) GetVault(ctx context.Context, vault codec.Address) (*GetVaultReply, error) {
	resp := new(GetVaultReply)
	err := cli.requester.SendRequest(
		ctx,
		"getVault",
		&GetVaultArgs{
			Vault: vault,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) DeriveVault(ctx context.Context, owner codec.Address) (*DeriveVaultReply, error) {
	resp := new(DeriveVaultReply)
	err := cli.requester.SendRequest(
		ctx,
		"deriveVault",
		&DeriveVaultArgs{
			Owner: owner,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(GetBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		&GetBalanceArgs{
			Address: addr,
		},
		resp,
	)
	return resp.Balance, err
}
