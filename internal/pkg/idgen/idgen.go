// Package idgen mints identifiers for stored monsters and for the embedded
// effect entries inside imported abilities.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier on every call
type Generator interface {
	Generate() string
}

const foundryAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FoundryIDLength is the length of ids produced by FoundryGenerator
const FoundryIDLength = 16

// FoundryGenerator produces 16 character alphanumeric ids, the shape the
// virtual tabletop expects for embedded documents.
type FoundryGenerator struct{}

// NewFoundry creates a FoundryGenerator
func NewFoundry() *FoundryGenerator {
	return &FoundryGenerator{}
}

// Generate returns a random alphanumeric id
func (g *FoundryGenerator) Generate() string {
	buf := make([]byte, FoundryIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	for i, b := range buf {
		buf[i] = foundryAlphabet[int(b)%len(foundryAlphabet)]
	}
	return string(buf)
}

// SequentialGenerator counts up from 1. Tests use it for stable effect ids.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a counter whose ids carry prefix, if any
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next number in the sequence
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(atomic.AddUint64(&g.counter, 1), 10))
}

// UUIDGenerator produces random v4 UUIDs. Stored monsters use it.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator whose ids carry prefix, if any
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new UUID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
