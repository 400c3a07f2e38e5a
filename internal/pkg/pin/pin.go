package pin

import (
	"crypto/rand"
	"math/big"
)

// Length of generated confirmation codes. Four digits matches what vendors
// read out loud at the counter; collisions across a single vendor's active
// reservations are acceptable because check-in is always scoped to one
// reservation row.
const Length = 4

// Generate returns a zero-padded numeric confirmation code.
func Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < Length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	digits := n.String()
	for len(digits) < Length {
		digits = "0" + digits
	}
	return digits, nil
}
