package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVCard_SplitsNameOnLastSpace(t *testing.T) {
	got := VCard("Asha Rao", "+91 9000000001")
	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Rao;Asha;;;\n" +
		"FN:Asha Rao\n" +
		"TEL;TYPE=CELL:+91 9000000001\n" +
		"END:VCARD"
	assert.Equal(t, want, got)
}

func TestVCard_MultiPartGivenName(t *testing.T) {
	got := VCard("Mary Jane Watson", "123")
	assert.Contains(t, got, "N:Watson;Mary Jane;;;")
	assert.Contains(t, got, "FN:Mary Jane Watson")
}

func TestVCard_SingleWordName(t *testing.T) {
	got := VCard("Cher", "123")
	assert.Contains(t, got, "N:Cher;;;;")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cards/Asha Rao_01HX5Z.png", Key("Asha Rao", "01HX5Z"))
}
