// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertKeypairQuery(t *testing.T) {
	sealed := []byte{1, 2, 3}

	query, args, err := buildInsertKeypairQuery("pk", sealed)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO keypairs (public_key,secret_key) VALUES (?,?)", query)
	require.Len(t, args, 2)
	assert.Equal(t, "pk", args[0])
	assert.Equal(t, sealed, args[1])
}

func Test_buildListPublicKeysQuery(t *testing.T) {
	query, args, err := buildListPublicKeysQuery(10, 20)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select public_key from keypairs")
	assert.Contains(t, q, "order by id asc")
	assert.Contains(t, q, "limit 10")
	assert.Contains(t, q, "offset 20")
	assert.Empty(t, args)
}

func Test_buildDeleteKeypairQuery(t *testing.T) {
	query, args, err := buildDeleteKeypairQuery("pk")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM keypairs WHERE public_key = ?", query)
	assert.Equal(t, []any{"pk"}, args)
}

func Test_buildVaultMetaQueries(t *testing.T) {
	query, args, err := buildSelectVaultMetaQuery()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM vault_meta WHERE id = ?")
	assert.Equal(t, []any{vaultMetaRowID}, args)

	meta := vaultMeta{
		Salt:       []byte("salt"),
		WrappedDEK: []byte("dek"),
		Params:     crypto.ArgonParams{Time: 1, MemoryKiB: 2, Threads: 3},
	}
	query, args, err = buildInsertVaultMetaQuery(meta)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO vault_meta"))
	require.Len(t, args, 6)
	assert.Equal(t, vaultMetaRowID, args[0])
	assert.Equal(t, uint8(3), args[5])
}
