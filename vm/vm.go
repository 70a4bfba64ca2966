// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/lume-labs/vaultvm/actions"
	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// setupParsers registers every action, auth and output type. Actions that
// reach external services are registered with [programs] bound, so parsed
// transactions execute against the same invoker the VM was built with.
func setupParsers(programs *external.Programs, log logging.Logger) error {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		ActionParser.Register(&actions.InitializeVault{}, nil),
		ActionParser.Register(actions.NewInitVaultHolding(programs), actions.UnmarshalInitVaultHolding(programs)),
		ActionParser.Register(actions.NewDepositDomain(programs), actions.UnmarshalDepositDomain(programs)),
		ActionParser.Register(actions.NewWithdrawDomain(programs), actions.UnmarshalWithdrawDomain(programs)),
		ActionParser.Register(actions.NewDepositUnwrappedDomain(programs), actions.UnmarshalDepositUnwrappedDomain(programs)),
		ActionParser.Register(actions.NewWithdrawUnwrappedDomain(programs), actions.UnmarshalWithdrawUnwrappedDomain(programs)),
		ActionParser.Register(actions.NewDepositDomainWithRecord(programs, log), actions.UnmarshalDepositDomainWithRecord(programs, log)),

		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),

		OutputParser.Register(&actions.InitializeVaultResult{}, nil),
		OutputParser.Register(&actions.InitVaultHoldingResult{}, nil),
		OutputParser.Register(&actions.DepositDomainResult{}, nil),
		OutputParser.Register(&actions.WithdrawDomainResult{}, nil),
		OutputParser.Register(&actions.DepositUnwrappedDomainResult{}, nil),
		OutputParser.Register(&actions.WithdrawUnwrappedDomainResult{}, nil),
		OutputParser.Register(&actions.DepositDomainWithRecordResult{}, nil),
	)
	return errs.Err
}

// New returns a VM with the indexer, websocket, rpc and vault apis enabled,
// reaching the external services through [inv].
func New(inv external.Invoker, log logging.Logger, options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add Vault API
	}, options...)

	return NewWithOptions(inv, log, opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(inv external.Invoker, log logging.Logger, options ...vm.Option) (*vm.VM, error) {
	programs, err := external.NewPrograms(
		inv,
		consts.TokenService,
		consts.RegistryService,
		consts.RecordsService,
	)
	if err != nil {
		return nil, err
	}
	if err := setupParsers(programs, log); err != nil {
		return nil, err
	}
	return vm.New(
		consts.Version,
		genesis.DefaultGenesisFactory{},
		&storage.StateManager{},
		ActionParser,
		AuthParser,
		OutputParser,
		auth.Engines(),
		options...,
	)
}
