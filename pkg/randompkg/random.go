// Package randompkg provides functionality for generating random application items in tests and seeders.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer in [0, max) using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Username generates a random username.
func Username() string {
	return String(8)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@email.com", String(10))
}

// MoneyAmountBetween generates a random amount of money in [min, max] with two decimal places.
func MoneyAmountBetween(min, max int64) decimal.Decimal {
	cents := min*100 + Intn(int((max-min)*100+1))
	return decimal.New(cents, -2)
}

// OneOf returns a random element of items.
func OneOf[T any](items ...T) T {
	return items[Intn(len(items))]
}
