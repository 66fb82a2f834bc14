// Package session owns the persisted login identity and the logged-in /
// logged-out state derived from it.
package session

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "komik"
	keyringUser    = "username"
)

// ErrNoSession means no identity is persisted on this device.
var ErrNoSession = errors.New("no saved session")

// Store persists the single opaque username under a fixed key.
type Store interface {
	Save(username string) error
	Load() (string, error)
	Clear() error
}

// KeyringStore keeps the username in the OS keyring.
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Save(username string) error {
	return keyring.Set(keyringService, keyringUser, username)
}

func (s *KeyringStore) Load() (string, error) {
	v, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", ErrNoSession
	}
	return v, nil
}

func (s *KeyringStore) Clear() error {
	err := keyring.Delete(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
