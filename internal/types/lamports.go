package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// LamportsPerSOL is the number of base units in one SOL.
const LamportsPerSOL = 1_000_000_000

// FormatSOL renders a lamport amount as SOL with exactly two decimal places,
// rounding half up. The arithmetic stays in big integers throughout: float64
// cannot represent large lamport sums exactly.
func FormatSOL(lamports math.Int) string {
	hundredths := lamports.AddRaw(LamportsPerSOL / 200).QuoRaw(LamportsPerSOL / 100)
	return fmt.Sprintf("%s.%02d", hundredths.QuoRaw(100).String(), hundredths.ModRaw(100).Int64())
}
