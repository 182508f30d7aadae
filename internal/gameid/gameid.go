// Package gameid produces short, sortable identifiers for games.
//
// IDs are UUIDs rendered as 26 lowercase characters of Crockford's base32.
// Generate uses UUIDv7 so IDs sort by creation time; FromSeed derives a
// random UUID from a game seed so that replaying a seed yields the same ID.
package gameid

import (
	"encoding/base32"
	"encoding/binary"
	rand "math/rand/v2"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in every encoded ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate creates a new time-ordered game ID.
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the system entropy source does
		panic("gameid: " + err.Error())
	}
	return encode(id)
}

// FromSeed derives a game ID deterministically from a seed.
func FromSeed(seed int64) string {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	copy(key[8:], "liarsgame/gameid/v1")

	id, err := uuid.NewRandomFromReader(rand.NewChaCha8(key))
	if err != nil {
		panic("gameid: " + err.Error())
	}
	return encode(id)
}

func encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}
