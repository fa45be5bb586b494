package prize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount_BandBoundaries(t *testing.T) {
	tbl := NewTable(DefaultBands())

	cases := []struct {
		number int
		want   int
	}{
		{1, 1100}, {8, 1100},
		{9, 2200}, {16, 2200},
		{17, 3300}, {23, 3300},
		{24, 5000}, {36, 5000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tbl.Amount(c.number), "number %d", c.number)
	}
}

func TestAmount_UncoveredNumbersResolveToZero(t *testing.T) {
	tbl := NewTable(DefaultBands())

	assert.Equal(t, 0, tbl.Amount(0))
	assert.Equal(t, 0, tbl.Amount(37))
	assert.Equal(t, 0, tbl.Amount(-1))
	assert.Equal(t, 0, tbl.Amount(1_000_000))
}

func TestAmount_AlternateTable(t *testing.T) {
	tbl := NewTable([]Band{{Min: 5, Max: 10, Amount: 42}})

	assert.Equal(t, 42, tbl.Amount(5))
	assert.Equal(t, 42, tbl.Amount(10))
	assert.Equal(t, 0, tbl.Amount(4))
	assert.Equal(t, 0, tbl.Amount(11))
}

func TestNewTable_CopiesBands(t *testing.T) {
	bands := []Band{{Min: 1, Max: 2, Amount: 100}}
	tbl := NewTable(bands)
	bands[0].Amount = 999

	assert.Equal(t, 100, tbl.Amount(1))
}
