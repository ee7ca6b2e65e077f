package format

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const idLength = 7

// GenerateID returns a short base-36 identifier drawn from a random UUID.
// Collisions are unlikely but possible; do not use it where uniqueness must
// be guaranteed.
func GenerateID() string {
	id := uuid.New()
	s := new(big.Int).SetBytes(id[:]).Text(36)
	if len(s) < idLength {
		s = strings.Repeat("0", idLength-len(s)) + s
	}
	return s[len(s)-idLength:]
}
