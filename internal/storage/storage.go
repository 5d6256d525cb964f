package storage

import (
	"gamefi_on_near/internal/near"
)

type Store interface {
	Get(key []byte) []byte
	Set(key []byte, value []byte)
	Has(key []byte) bool
	Delete(key []byte)
	IterPrefix(prefix []byte, callback func(key, value []byte) bool)
}

type NearStore struct{}

func NewNearStore() *NearStore {
	return &NearStore{}
}

func (s *NearStore) Get(key []byte) []byte {
	data, err := near.StorageRead(key)
	if err != nil {
		return nil
	}
	return data
}

func (s *NearStore) Set(key []byte, value []byte) {
	near.StorageWrite(key, value)
}

func (s *NearStore) Has(key []byte) bool {
	data, err := near.StorageRead(key)
	if err != nil {
		return false
	}
	return data != nil
}

func (s *NearStore) Delete(key []byte) {
	near.StorageRemove(key)
}

func (s *NearStore) IterPrefix(prefix []byte, callback func(key, value []byte) bool) {
	// NEAR exposes no key-range scan to contracts; every record this module
	// keeps is reachable by direct key, so nothing on-chain depends on this.
	_ = prefix
	_ = callback
	// TODO: Implement proper prefix iteration when available in near-sdk-go
}
