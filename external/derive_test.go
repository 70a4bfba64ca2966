// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package external_test

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/lume-labs/vaultvm/external"
)

func TestDeriveAddressDeterminism(t *testing.T) {
	require := require.New(t)

	seedA := []byte("seed-a")
	seedB := []byte("seed-b")

	id, proof, err := external.DeriveAddress(seedA, seedB)
	require.NoError(err)
	require.NotEqual(ids.Empty, id)

	again, againProof, err := external.DeriveAddress(seedA, seedB)
	require.NoError(err)
	require.Equal(id, again)
	require.Equal(proof, againProof)
}

func TestDeriveAddressSeedSensitivity(t *testing.T) {
	require := require.New(t)

	id, _, err := external.DeriveAddress([]byte("seed-a"), []byte("seed-b"))
	require.NoError(err)

	other, _, err := external.DeriveAddress([]byte("seed-a"), []byte("seed-c"))
	require.NoError(err)
	require.NotEqual(id, other)
}

func TestVerifyDerivation(t *testing.T) {
	require := require.New(t)

	seeds := [][]byte{[]byte("vault"), []byte("owner-identity")}
	id, proof, err := external.DeriveAddress(seeds...)
	require.NoError(err)

	require.True(external.VerifyDerivation(id, proof, seeds...))
	require.False(external.VerifyDerivation(id, proof, []byte("vault"), []byte("someone-else")))

	tampered := id
	tampered[0] ^= 0x01
	require.False(external.VerifyDerivation(tampered, proof, seeds...))
}
