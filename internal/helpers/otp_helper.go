package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns a random 4-digit one-time password (1000-9999, so the
// code never starts with a zero the way the mobile client renders it).
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
