// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrVaultAlreadyExists = errors.New("vault already exists for owner")
	ErrVaultMissing       = errors.New("vault does not exist")
	ErrNotVaultOwner      = errors.New("actor is not the vault owner")
	ErrVaultMismatch      = errors.New("vault address does not re-derive from owner")
)
