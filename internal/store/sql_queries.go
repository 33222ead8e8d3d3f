// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	keypairsTable  = "keypairs"
	vaultMetaTable = "vault_meta"

	// vault_meta holds exactly one row
	vaultMetaRowID = 1
)

func buildInsertKeypairQuery(publicKey string, sealedSecret []byte) (string, []any, error) {
	return sq.Insert(keypairsTable).
		Columns("public_key", "secret_key").
		Values(publicKey, sealedSecret).
		ToSql()
}

// buildListPublicKeysQuery pages through keys in insertion order.
func buildListPublicKeysQuery(limit, offset int) (string, []any, error) {
	return sq.Select("public_key").
		From(keypairsTable).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func buildDeleteKeypairQuery(publicKey string) (string, []any, error) {
	return sq.Delete(keypairsTable).
		Where(sq.Eq{"public_key": publicKey}).
		ToSql()
}

func buildSelectVaultMetaQuery() (string, []any, error) {
	return sq.Select("salt", "wrapped_dek", "argon_time", "argon_memory_kib", "argon_threads").
		From(vaultMetaTable).
		Where(sq.Eq{"id": vaultMetaRowID}).
		ToSql()
}

func buildInsertVaultMetaQuery(meta vaultMeta) (string, []any, error) {
	return sq.Insert(vaultMetaTable).
		Columns("id", "salt", "wrapped_dek", "argon_time", "argon_memory_kib", "argon_threads").
		Values(vaultMetaRowID, meta.Salt, meta.WrappedDEK, meta.Params.Time, meta.Params.MemoryKiB, meta.Params.Threads).
		ToSql()
}
