package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyabhat/scanlate/internal/domain"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	return LoadCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
}

// requireInvariants checks that at most one key is active and that the
// active name, if set, exists in the set.
func requireInvariants(t *testing.T, s *CredentialStore, chatID int64) {
	t.Helper()
	active := 0
	for _, info := range s.List(chatID) {
		if info.Active {
			active++
			assert.True(t, s.Has(chatID, info.Name))
		}
	}
	assert.LessOrEqual(t, active, 1)
}

func TestCredentialStore_AddActivatesFirstKey(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(42, "first", "secret-1"))
	requireInvariants(t, s, 42)
	assert.Equal(t, "secret-1", s.GetActive(42))

	// A second key must not steal the active pointer.
	require.NoError(t, s.Add(42, "second", "secret-2"))
	requireInvariants(t, s, 42)
	assert.Equal(t, "secret-1", s.GetActive(42))
}

func TestCredentialStore_AddRejectsEmptySecret(t *testing.T) {
	s := newTestStore(t)

	err := s.Add(42, "blank", "   ")
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, s.List(42))
}

func TestCredentialStore_AddOverwritesSilently(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(42, "key", "old"))
	require.NoError(t, s.Add(42, "key", "new"))
	assert.Equal(t, "new", s.GetActive(42))
	assert.Len(t, s.List(42), 1)
}

func TestCredentialStore_SetActive(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(42, "a", "sa"))
	require.NoError(t, s.Add(42, "b", "sb"))

	assert.True(t, s.SetActive(42, "b"))
	assert.Equal(t, "sb", s.GetActive(42))
	requireInvariants(t, s, 42)

	// Unknown name is a no-op.
	assert.False(t, s.SetActive(42, "missing"))
	assert.Equal(t, "sb", s.GetActive(42))
}

func TestCredentialStore_DeletePromotesRemaining(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(42, "a", "sa"))
	require.NoError(t, s.Add(42, "b", "sb"))

	assert.True(t, s.Delete(42, "a"))
	requireInvariants(t, s, 42)
	assert.Equal(t, "sb", s.GetActive(42), "remaining key should be promoted")

	assert.True(t, s.Delete(42, "b"))
	assert.Empty(t, s.GetActive(42), "active cleared when set empties")

	assert.False(t, s.Delete(42, "b"), "second delete is a no-op")
}

func TestCredentialStore_DeleteInactiveKeepsActive(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(42, "a", "sa"))
	require.NoError(t, s.Add(42, "b", "sb"))

	assert.True(t, s.Delete(42, "b"))
	assert.Equal(t, "sa", s.GetActive(42))
	requireInvariants(t, s, 42)
}

func TestCredentialStore_Rename(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(42, "a", "sa"))
	require.NoError(t, s.Add(42, "b", "sb"))

	t.Run("conflict leaves both mappings unchanged", func(t *testing.T) {
		err := s.Rename(42, "a", "b")
		assert.ErrorIs(t, err, domain.ErrNameTaken)
		assert.True(t, s.Has(42, "a"))
		assert.True(t, s.Has(42, "b"))
		assert.Equal(t, "sa", s.GetActive(42))
	})

	t.Run("missing source", func(t *testing.T) {
		err := s.Rename(42, "nope", "c")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("active pointer follows rename", func(t *testing.T) {
		require.NoError(t, s.Rename(42, "a", "primary"))
		assert.False(t, s.Has(42, "a"))
		assert.Equal(t, "sa", s.GetActive(42))
		requireInvariants(t, s, 42)
	})

	t.Run("new name is trimmed", func(t *testing.T) {
		require.NoError(t, s.Rename(42, "primary", "  main  "))
		assert.True(t, s.Has(42, "main"))
		assert.False(t, s.Has(42, "  main  "))
		assert.Equal(t, "sa", s.GetActive(42))
		requireInvariants(t, s, 42)
	})

	t.Run("blank new name rejected", func(t *testing.T) {
		err := s.Rename(42, "main", "   ")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.True(t, s.Has(42, "main"))
	})
}

func TestCredentialStore_ChatsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(1, "mine", "s1"))
	require.NoError(t, s.Add(2, "theirs", "s2"))

	assert.True(t, s.Delete(1, "mine"))
	assert.Equal(t, "s2", s.GetActive(2))
}

func TestCredentialStore_ListSorted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(42, "zeta", "sz"))
	require.NoError(t, s.Add(42, "alpha", "sa"))
	require.NoError(t, s.Add(42, "mid", "sm"))

	infos := s.List(42)
	require.Len(t, infos, 3)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "mid", infos[1].Name)
	assert.Equal(t, "zeta", infos[2].Name)
}

func TestCredentialStore_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	s := LoadCredentialStore(path)
	require.NoError(t, s.Add(42, "a", "sa"))
	require.NoError(t, s.Add(42, "b", "sb"))
	assert.True(t, s.SetActive(42, "b"))

	reloaded := LoadCredentialStore(path)
	assert.Equal(t, "sb", reloaded.GetActive(42))
	assert.Len(t, reloaded.List(42), 2)
}

func TestCredentialStore_CorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := LoadCredentialStore(path)
	assert.Empty(t, s.List(42))

	// The store must still accept writes afterwards.
	require.NoError(t, s.Add(42, "a", "sa"))
	assert.Equal(t, "sa", s.GetActive(42))
}
