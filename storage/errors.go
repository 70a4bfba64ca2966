// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidBalance    = errors.New("invalid balance")
	ErrInvalidVaultEntry = errors.New("invalid vault entry")
	ErrNoDomains         = errors.New("vault holds no domains")
	ErrTooManyDomains    = errors.New("vault domain count overflow")
)
