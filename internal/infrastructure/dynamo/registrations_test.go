package dynamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKey_Deterministic(t *testing.T) {
	assert.Equal(t, pairKey("Asha Rao", "+91 9000000001"), pairKey("Asha Rao", "+91 9000000001"))
}

func TestPairKey_DelimiterInFieldDoesNotCollide(t *testing.T) {
	// No format validation happens before this layer, so a "#" in either
	// field is valid input and must not shift the name/phone boundary.
	assert.NotEqual(t,
		pairKey("Asha#Rao", "9000000001"),
		pairKey("Asha", "Rao#9000000001"))
}

func TestPairKey_DistinctPairsDeriveDistinctKeys(t *testing.T) {
	pairs := []struct{ name, phone string }{
		{"Asha Rao", "9000000001"},
		{"Asha", "Rao 9000000001"},
		{"Asha#Rao", "9000000001"},
		{"Asha", "Rao#9000000001"},
		{"Asha%23Rao", "9000000001"},
	}
	seen := make(map[string]int)
	for i, p := range pairs {
		key := pairKey(p.name, p.phone)
		if prev, ok := seen[key]; ok {
			t.Fatalf("pairs %d and %d collide on key %q", prev, i, key)
		}
		seen[key] = i
	}
}
