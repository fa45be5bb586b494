package prize

// Band maps an inclusive integer range of wheel numbers to a fixed amount.
type Band struct {
	Min    int
	Max    int
	Amount int
}

// Table resolves a wheel number to its prize amount. It is immutable after
// construction; the lookup is total over all integers, with 0 as the amount
// for any number no band covers.
type Table struct {
	bands []Band
}

// DefaultBands is the reference campaign's tier table.
func DefaultBands() []Band {
	return []Band{
		{Min: 1, Max: 8, Amount: 1100},
		{Min: 9, Max: 16, Amount: 2200},
		{Min: 17, Max: 23, Amount: 3300},
		{Min: 24, Max: 36, Amount: 5000},
	}
}

// NewTable builds a table from the given bands. Bands are copied so later
// mutation of the slice cannot change resolution results.
func NewTable(bands []Band) *Table {
	b := make([]Band, len(bands))
	copy(b, bands)
	return &Table{bands: b}
}

// Amount returns the prize amount for n, or 0 when no band covers it.
func (t *Table) Amount(n int) int {
	for _, b := range t.bands {
		if n >= b.Min && n <= b.Max {
			return b.Amount
		}
	}
	return 0
}
