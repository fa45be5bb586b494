package card

import (
	"fmt"
	"strings"
)

// VCard renders a vCard 3.0 contact record for the participant. The name is
// split on its last whitespace boundary: everything after it is the family
// name, everything before it the given name(s).
func VCard(name, phone string) string {
	given, family := splitName(name)
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(&b, "N:%s;%s;;;\n", family, given)
	fmt.Fprintf(&b, "FN:%s\n", name)
	fmt.Fprintf(&b, "TEL;TYPE=CELL:%s\n", phone)
	b.WriteString("END:VCARD")
	return b.String()
}

func splitName(name string) (given, family string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	family = parts[len(parts)-1]
	given = strings.Join(parts[:len(parts)-1], " ")
	return given, family
}

// Key derives the storage key for a participant's card. One key per
// identity, so the at-most-once write discipline hangs off it.
func Key(name, participantID string) string {
	return fmt.Sprintf("cards/%s_%s.png", name, participantID)
}
