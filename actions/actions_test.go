// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/external/externaltest"
	"github.com/lume-labs/vaultvm/storage"
)

func testPrograms(t *testing.T, rec *externaltest.Invoker) *external.Programs {
	t.Helper()
	programs, err := external.NewPrograms(
		rec,
		ids.GenerateTestID(),
		ids.GenerateTestID(),
		ids.GenerateTestID(),
	)
	require.NoError(t, err)
	return programs
}

// setupVault writes owner's ledger entry at its derived address and returns
// that address.
func setupVault(t *testing.T, store state.Mutable, owner codec.Address, domains uint64) codec.Address {
	t.Helper()
	vault, proof, err := storage.VaultAddress(owner)
	require.NoError(t, err)
	require.NoError(t, storage.SetVault(context.Background(), store, vault, owner, proof, domains))
	return vault
}
