/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/crypto/salsa20"
	"gonum.org/v1/gonum/mathext/prng"
)

// NewSeededSource returns a Mersenne Twister (MT19937-64) source
// seeded with seed. It is not safe for concurrent use.
func NewSeededSource(seed uint64) rand.Source {
	src := prng.NewMT19937_64()
	src.Seed(seed)
	return src
}

// NewSplitMixSource returns a SplitMix64 source seeded with seed.
// It is not safe for concurrent use.
func NewSplitMixSource(seed uint64) rand.Source {
	return prng.NewSplitMix64(seed)
}

// CryptoSource reads randomness from the operating system's
// cryptographically secure generator. It is safe for concurrent use.
type CryptoSource struct{}

// NewCryptoSource returns an instance of CryptoSource.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// Uint64 returns a uniformly random uint64. It panics if the system
// generator fails, since rand.Source has no way to report errors.
func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(errors.Wrap(err, "error while reading system randomness"))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// keyedBlockLen is the number of keystream bytes produced per nonce.
const keyedBlockLen = 512

// KeyedSource is a deterministic source producing the salsa20
// keystream of a 32 byte key. The same key always yields the same
// sequence of values, so samples can be reproduced from the key alone.
// It is not safe for concurrent use.
type KeyedSource struct {
	key   [32]byte
	nonce uint64
	buf   [keyedBlockLen]byte
	pos   int
}

// NewKeyedSource returns an instance of KeyedSource. The key is copied.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	return &KeyedSource{
		key: *key,
		pos: keyedBlockLen,
	}
}

// Uint64 returns the next 8 bytes of the keystream as a little-endian
// uint64.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > keyedBlockLen {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

// refill encrypts a block of zeros under the next nonce.
func (s *KeyedSource) refill() {
	var in [keyedBlockLen]byte // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)
	s.nonce++

	salsa20.XORKeyStream(s.buf[:], in[:], nonce, &s.key)
	s.pos = 0
}
