// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

// TypeIDs for actions
const (
	InitializeVaultID uint8 = iota
	InitVaultHoldingID
	DepositDomainID
	WithdrawDomainID
	DepositUnwrappedDomainID
	WithdrawUnwrappedDomainID
	DepositDomainWithRecordID
)

// TypeIDs for auth
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to VaultVM address generation
	VaultID
)

const (
	Name = "VaultVM"
	HRP  = "vault"
)

var (
	ID ids.ID

	// Identities of the external services this VM orchestrates. Fixed per
	// deployment.
	TokenService    ids.ID
	RegistryService ids.ID
	RecordsService  ids.ID
)

func init() {
	ID = serviceID(Name)
	TokenService = serviceID("token-transfer")
	RegistryService = serviceID("name-registry")
	RecordsService = serviceID("name-records")
}

func serviceID(name string) ids.ID {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(name))
	id, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	return id
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
