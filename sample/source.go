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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// keystreamSource is a deterministic rand.Source reading a salsa20
// keystream. The seed determines the key, so an equal seed always
// yields an equal stream regardless of how much was consumed before
// reseeding.
type keystreamSource struct {
	key   [32]byte
	nonce uint64
	buf   [64]byte
	off   int
}

// NewKeystreamSource returns a deterministic random source for the
// given seed.
func NewKeystreamSource(seed uint64) rand.Source {
	s := &keystreamSource{}
	s.Seed(seed)
	return s
}

// Seed resets the source to the beginning of the stream of seed.
func (s *keystreamSource) Seed(seed uint64) {
	s.key = [32]byte{}
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.nonce = 0
	s.off = len(s.buf)
}

// Uint64 returns the next 64 bits of the keystream.
func (s *keystreamSource) Uint64() uint64 {
	if s.off >= len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

func (s *keystreamSource) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.nonce)
	s.nonce++

	var in [64]byte
	salsa20.XORKeyStream(s.buf[:], in[:], nonce[:], &s.key)
	s.off = 0
}

// generator is the process-wide random generator. Every generation
// routine in this package draws from it.
var generator = rand.New(NewKeystreamSource(0))

// Generator returns the process-wide random generator, e.g. for use
// as the source of a distribution.
func Generator() *rand.Rand {
	return generator
}

// SetSeed reseeds the process-wide generator. Generation after equal
// seeds produces equal results.
func SetSeed(seed uint64) {
	generator.Seed(seed)
}
