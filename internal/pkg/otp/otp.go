// Package otp generates the one-time numeric codes used for email
// verification.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const TTL = 10 * time.Minute

// Generate returns a random 6-digit code as a string, never starting with a
// leading zero so it survives clients that treat it as a number.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
