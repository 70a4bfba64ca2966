// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/storage"
)

const JSONRPCEndpoint = "/vaultapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type GetVaultArgs struct {
	Vault codec.Address `json:"vault"`
}

type GetVaultReply struct {
	Owner   codec.Address `json:"owner"`
	Proof   uint8         `json:"proof"`
	Domains uint64        `json:"domains"`
}

func (j *JSONRPCServer) GetVault(req *http.Request, args *GetVaultArgs, reply *GetVaultReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetVault")
	defer span.End()

	owner, proof, domains, err := storage.GetVaultFromState(ctx, j.vm.ReadState, args.Vault)
	if err != nil {
		return err
	}
	reply.Owner = owner
	reply.Proof = proof
	reply.Domains = domains
	return nil
}

type DeriveVaultArgs struct {
	Owner codec.Address `json:"owner"`
}

type DeriveVaultReply struct {
	Vault codec.Address `json:"vault"`
	Proof uint8         `json:"proof"`
}

// DeriveVault computes the vault address an owner controls without touching
// state; useful before the vault is initialized.
func (j *JSONRPCServer) DeriveVault(req *http.Request, args *DeriveVaultArgs, reply *DeriveVaultReply) error {
	_, span := j.vm.Tracer().Start(req.Context(), "Server.DeriveVault")
	defer span.End()

	vault, proof, err := storage.VaultAddress(args.Owner)
	if err != nil {
		return err
	}
	reply.Vault = vault
	reply.Proof = proof
	return nil
}

type GetBalanceArgs struct {
	Address codec.Address `json:"address"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}
