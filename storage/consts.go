// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for VaultVM
	balancePrefix
	vaultPrefix
)

// Chunks
const (
	BalanceChunks uint16 = 1
	VaultChunks   uint16 = 1
)

// vaultEntryTag prefixes every stored vault ledger entry so the storage
// layer can tell entry types apart.
const vaultEntryTag byte = 0x01

// VaultSeed prefixes every vault address derivation.
var VaultSeed = []byte("vault")
