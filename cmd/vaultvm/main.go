// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/ulimit"
	"github.com/ava-labs/avalanchego/vms/rpcchainvm"
	"github.com/spf13/cobra"

	"github.com/lume-labs/vaultvm/cmd/vaultvm/version"
	"github.com/lume-labs/vaultvm/consts"
	"github.com/lume-labs/vaultvm/external"

	vvm "github.com/lume-labs/vaultvm/vm"
)

var gatewayURI string

var rootCmd = &cobra.Command{
	Use:        "vaultvm",
	Short:      "VaultVM agent",
	SuggestFor: []string{"vaultvm"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(
		&gatewayURI,
		"external-gateway",
		"http://127.0.0.1:9652/ext/vault-gateway",
		"URI of the gateway fronting the token, registry and records services",
	)
	rootCmd.AddCommand(
		version.NewCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vaultvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(*cobra.Command, []string) error {
	if err := ulimit.Set(ulimit.DefaultFDLimit, logging.NoLog{}); err != nil {
		return fmt.Errorf("%w: failed to set fd limit correctly", err)
	}

	inv := external.NewRPCInvoker(gatewayURI, consts.Name)
	v, err := vvm.New(inv, logging.NoLog{})
	if err != nil {
		return err
	}

	return rpcchainvm.Serve(context.TODO(), v)
}
