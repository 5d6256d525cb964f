package storage

import (
	"encoding/binary"
)

// Counters and balances are stored as 8-byte little-endian values.
// A missing or short record reads as zero.

func (ms *ModuleStore) GetU64(key []byte) uint64 {
	data := ms.Get(key)
	if len(data) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(data)
}

func (ms *ModuleStore) SetU64(key []byte, value uint64) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, value)
	ms.Set(key, data)
}
