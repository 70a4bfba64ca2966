// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	InitializeVaultComputeUnits         = 1
	InitVaultHoldingComputeUnits        = 1
	DepositDomainComputeUnits           = 1
	WithdrawDomainComputeUnits          = 1
	DepositUnwrappedDomainComputeUnits  = 1
	WithdrawUnwrappedDomainComputeUnits = 1
	// Four external calls, priced accordingly.
	DepositDomainWithRecordComputeUnits = 4
)
