// Package keyauth authenticates API callers. Each identity that may call
// the registry holds an API key; the keys file on disk stores only bcrypt
// hashes, never the keys themselves.
package keyauth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// Errors
var (
	ErrInvalidKey = errors.New("invalid API key")
)

// KeysFile is the on-disk format of the keys file
type KeysFile struct {
	Keys []KeyEntry `yaml:"keys"`
}

// KeyEntry maps one identity to the bcrypt hash of its API key
type KeyEntry struct {
	Identity string `yaml:"identity"`
	KeyHash  string `yaml:"key_hash"`
}

// Service resolves bearer credentials to caller identities
type Service struct {
	hashes map[model.Identity]string
}

// New creates a Service from identity -> bcrypt hash pairs
func New(hashes map[model.Identity]string) *Service {
	if hashes == nil {
		hashes = make(map[model.Identity]string)
	}
	return &Service{hashes: hashes}
}

// LoadFile creates a Service from a YAML keys file
func LoadFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keys file: %w", err)
	}

	var file KeysFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keys file: %w", err)
	}

	hashes := make(map[model.Identity]string, len(file.Keys))
	for _, entry := range file.Keys {
		if entry.Identity == "" || entry.KeyHash == "" {
			return nil, fmt.Errorf("keys file entry missing identity or key_hash")
		}
		hashes[model.Identity(entry.Identity)] = entry.KeyHash
	}

	return New(hashes), nil
}

// Authenticate verifies a bearer credential of the form
// "<identity>:<secret>" and returns the verified identity.
func (s *Service) Authenticate(credential string) (model.Identity, error) {
	identity, secret, ok := strings.Cut(credential, ":")
	if !ok || identity == "" || secret == "" {
		return "", ErrInvalidKey
	}

	hash, ok := s.hashes[model.Identity(identity)]
	if !ok {
		// Compare against a throwaway hash so unknown identities cost
		// the same as wrong secrets.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000uFzbMdVQimTkLJiIMXhbY6nnUO0RT9K"), []byte(secret))
		return "", ErrInvalidKey
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return "", ErrInvalidKey
	}

	return model.Identity(identity), nil
}

// HashKey produces the bcrypt hash of a key for the keys file
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
