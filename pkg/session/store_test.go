package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore()

	require.NoError(t, store.Save("alice"))

	username, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestKeyringStoreAbsent(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestKeyringStoreClear(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore()

	require.NoError(t, store.Save("alice"))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestKeyringStoreClearWhenEmpty(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore()

	// Clearing an absent session is not an error.
	assert.NoError(t, store.Clear())
}

func TestKeyringStoreOverwrite(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore()

	require.NoError(t, store.Save("alice"))
	require.NoError(t, store.Save("bob"))

	username, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}
