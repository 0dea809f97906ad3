package world

// DefaultResource is the resource kind planets carry unless told otherwise.
const DefaultResource = "Minerals"

// Cosmetic palette indices (CGA order, see render.Palette).
const (
	ColorVoid      uint8 = 1  // blue
	ColorLightGray uint8 = 7  // light gray
	ColorSteelBlue uint8 = 9  // light blue
	ColorGold      uint8 = 14 // yellow
	ColorHull      uint8 = 15 // white
)

// Ledger tracks a planet's extractable resource.
// Amount never goes negative.
type Ledger struct {
	Kind   string
	Amount int
}

// Take removes up to amount units and returns how many were actually removed.
func (l *Ledger) Take(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > l.Amount {
		amount = l.Amount
	}
	l.Amount -= amount
	return amount
}

// Set replaces the ledger contents, clamping negative amounts to zero.
func (l *Ledger) Set(kind string, amount int) {
	l.Kind = kind
	if amount < 0 {
		amount = 0
	}
	l.Amount = amount
}
