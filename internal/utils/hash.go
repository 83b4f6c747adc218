// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests with a pool of reusable hash
// instances. A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key.
func NewHasher(key []byte) *Hasher {
	k := append([]byte(nil), key...)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Sum returns the HMAC-SHA256 digest over the concatenation of parts.
func (h *Hasher) Sum(parts ...[]byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	for _, p := range parts {
		mac.Write(p)
	}
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Verify reports whether expected is the digest of parts. The comparison
// runs in constant time.
func (h *Hasher) Verify(expected []byte, parts ...[]byte) bool {
	return hmac.Equal(expected, h.Sum(parts...))
}
