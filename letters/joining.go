package letters

// JoiningType is the joining behaviour of a letter, in terms of Unicode's
// Joining_Type property. It is derived from the forms a letter has.
type JoiningType uint8

const (
	NonJoining   JoiningType = iota // U: isolated form only, e.g. Hamza
	RightJoining                    // R: joins the letter before, e.g. Alef, Dal, Waw
	LeftJoining                     // L: joins the letter after only
	DualJoining                     // D: joins both sides, e.g. Beh, Jeem, Ain
	JoinCausing                     // C: Tatweel and ZWJ
)

func (jt JoiningType) String() string {
	switch jt {
	case NonJoining:
		return "U"
	case RightJoining:
		return "R"
	case LeftJoining:
		return "L"
	case DualJoining:
		return "D"
	case JoinCausing:
		return "C"
	}
	return "?"
}

// Classify derives the joining type from a set of forms. A set which maps
// every slot onto one and the same code point is a join-causing control
// character.
func Classify(f Forms) JoiningType {
	switch {
	case f.IsEmpty():
		return NonJoining
	case f[Isolated] == f[Initial] && f[Initial] == f[Medial] && f[Medial] == f[Final]:
		return JoinCausing
	case f.Has(Medial):
		return DualJoining
	case f.Has(Final):
		return RightJoining
	case f.Has(Initial):
		return LeftJoining
	}
	return NonJoining
}

// Joining returns the joining type of letter. Letters not in the table are
// non-joining.
func Joining(letter rune) JoiningType {
	if jt, ok := theTable().joining[letter]; ok {
		return jt
	}
	return NonJoining
}

// ConnectsWithLetterBefore is true if letter may take a shape which connects
// to the letter preceding it in logical order, i.e. if it has a final or a
// medial form.
func ConnectsWithLetterBefore(letter rune) bool {
	forms, ok := Lookup(letter)
	if !ok {
		return false
	}
	return forms.Has(Final) || forms.Has(Medial)
}

// ConnectsWithLetterAfter is true if letter may connect to the letter
// following it, i.e. if it has an initial or a medial form.
func ConnectsWithLetterAfter(letter rune) bool {
	forms, ok := Lookup(letter)
	if !ok {
		return false
	}
	return forms.Has(Initial) || forms.Has(Medial)
}

// ConnectsWithLettersBeforeAndAfter is true for dual-joining letters, i.e.
// letters with a medial form. Tatweel and ZWJ count as dual-joining.
// Right-joining letters like Alef, Dal, Reh or Waw are false, even though
// they connect to the letter before.
func ConnectsWithLettersBeforeAndAfter(letter rune) bool {
	forms, ok := Lookup(letter)
	if !ok {
		return false
	}
	return forms.Has(Medial)
}
