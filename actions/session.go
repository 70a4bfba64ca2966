// Copyright (C) 2024, Lume Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/lume-labs/vaultvm/external"
	"github.com/lume-labs/vaultvm/storage"
)

// vaultSession is the guard every custody operation passes before touching
// external services or the ledger: the entry must exist, the caller must be
// its recorded owner and the supplied vault address must re-derive from that
// owner and the stored proof byte.
type vaultSession struct {
	vault   codec.Address
	owner   codec.Address
	proof   uint8
	domains uint64
}

func openVault(
	ctx context.Context,
	im state.Immutable,
	actor codec.Address,
	vault codec.Address,
) (*vaultSession, error) {
	owner, proof, domains, err := storage.GetVault(ctx, im, vault)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrVaultMissing
	}
	if err != nil {
		return nil, err
	}
	if owner != actor {
		return nil, ErrNotVaultOwner
	}
	if !storage.VerifyVaultAddress(vault, owner, proof) {
		return nil, ErrVaultMismatch
	}
	return &vaultSession{
		vault:   vault,
		owner:   owner,
		proof:   proof,
		domains: domains,
	}, nil
}

// signer returns the vault's proof-of-derivation signer, built fresh for the
// call being assembled. Vaults have no keypair; this is the only authority
// they can present.
func (s *vaultSession) signer() external.Signer {
	return external.Signer{
		Key:   external.AccountID(s.vault),
		Seeds: storage.VaultSeeds(s.owner, s.proof),
	}
}

func actorSigner(actor codec.Address) external.Signer {
	return external.Signer{Key: external.AccountID(actor)}
}
