package letters

import (
	"fmt"
	"strings"
)

// Position is the position of a letter within a connected run, and at the
// same time the index of the corresponding slot in a Forms set.
type Position uint8

const (
	Isolated Position = 0 // letter stands alone
	Initial  Position = 1 // letter starts a run
	Medial   Position = 2 // letter is connected on both sides
	Final    Position = 3 // letter ends a run
)

// Unshaped is reserved for run classifiers as their "not yet determined"
// state. It never is a valid index into Forms.
const Unshaped Position = 255

// NoForm marks an empty slot of a Forms set.
const NoForm rune = 0

// Control characters which are part of the table. Both map every slot
// onto themselves.
const (
	Tatweel rune = '\u0640' // ARABIC TATWEEL, elongates a connected run
	ZWJ     rune = '\u200D' // ZERO WIDTH JOINER, forces a connection
)

// IsValid is true for Isolated, Initial, Medial and Final.
func (p Position) IsValid() bool {
	return p <= Final
}

func (p Position) String() string {
	switch p {
	case Isolated:
		return "isolated"
	case Initial:
		return "initial"
	case Medial:
		return "medial"
	case Final:
		return "final"
	case Unshaped:
		return "unshaped"
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// Positions lists the valid positions in slot order.
var Positions = [...]Position{Isolated, Initial, Medial, Final}

// Forms holds the presentation forms of a letter, indexed by Position.
// Slots without a distinct glyph are NoForm.
type Forms [4]rune

// Form returns the presentation form for position p, or NoForm if the
// letter has no form for p. Unshaped and other invalid positions yield
// NoForm as well.
func (f Forms) Form(p Position) rune {
	if !p.IsValid() {
		return NoForm
	}
	return f[p]
}

// Has is true if f has a form for position p.
func (f Forms) Has(p Position) bool {
	return f.Form(p) != NoForm
}

// IsEmpty is true if no slot is filled. The zero value of Forms is empty.
func (f Forms) IsEmpty() bool {
	return f == Forms{}
}

func (f Forms) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, r := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if r == NoForm {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(fmt.Sprintf("U+%04X", r))
	}
	sb.WriteByte(']')
	return sb.String()
}
