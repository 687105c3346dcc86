package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixDigitOTPShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp := SixDigitOTP()
		require.Len(t, otp, 6)
		assert.Regexp(t, `^\d{6}$`, otp)
		seen[otp] = true
	}
	// 50 draws from a 900k space collapsing to one value means the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestTransactionIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := TransactionID()
		require.Len(t, id, 12)
		assert.Regexp(t, `^QV[0-9A-F]{10}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}
