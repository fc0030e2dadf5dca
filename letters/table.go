package letters

import (
	"iter"
	"slices"
	"sync"
)

// letterData lists base letters and their presentation forms, in the order
// of the Arabic block. Presentation forms are taken from Unicode's Arabic
// Presentation Forms-A (U+FB50…) and -B (U+FE70…) blocks.
var letterData = [...]struct {
	base  rune
	forms Forms
}{
	{0x0621, Forms{0xFE80, 0, 0, 0}},                     // ARABIC LETTER HAMZA
	{0x0622, Forms{0xFE81, 0, 0, 0xFE82}},                // ARABIC LETTER ALEF WITH MADDA ABOVE
	{0x0623, Forms{0xFE83, 0, 0, 0xFE84}},                // ARABIC LETTER ALEF WITH HAMZA ABOVE
	{0x0624, Forms{0xFE85, 0, 0, 0xFE86}},                // ARABIC LETTER WAW WITH HAMZA ABOVE
	{0x0625, Forms{0xFE87, 0, 0, 0xFE88}},                // ARABIC LETTER ALEF WITH HAMZA BELOW
	{0x0626, Forms{0xFE89, 0xFE8B, 0xFE8C, 0xFE8A}},      // ARABIC LETTER YEH WITH HAMZA ABOVE
	{0x0627, Forms{0xFE8D, 0, 0, 0xFE8E}},                // ARABIC LETTER ALEF
	{0x0628, Forms{0xFE8F, 0xFE91, 0xFE92, 0xFE90}},      // ARABIC LETTER BEH
	{0x0629, Forms{0xFE93, 0, 0, 0xFE94}},                // ARABIC LETTER TEH MARBUTA
	{0x062A, Forms{0xFE95, 0xFE97, 0xFE98, 0xFE96}},      // ARABIC LETTER TEH
	{0x062B, Forms{0xFE99, 0xFE9B, 0xFE9C, 0xFE9A}},      // ARABIC LETTER THEH
	{0x062C, Forms{0xFE9D, 0xFE9F, 0xFEA0, 0xFE9E}},      // ARABIC LETTER JEEM
	{0x062D, Forms{0xFEA1, 0xFEA3, 0xFEA4, 0xFEA2}},      // ARABIC LETTER HAH
	{0x062E, Forms{0xFEA5, 0xFEA7, 0xFEA8, 0xFEA6}},      // ARABIC LETTER KHAH
	{0x062F, Forms{0xFEA9, 0, 0, 0xFEAA}},                // ARABIC LETTER DAL
	{0x0630, Forms{0xFEAB, 0, 0, 0xFEAC}},                // ARABIC LETTER THAL
	{0x0631, Forms{0xFEAD, 0, 0, 0xFEAE}},                // ARABIC LETTER REH
	{0x0632, Forms{0xFEAF, 0, 0, 0xFEB0}},                // ARABIC LETTER ZAIN
	{0x0633, Forms{0xFEB1, 0xFEB3, 0xFEB4, 0xFEB2}},      // ARABIC LETTER SEEN
	{0x0634, Forms{0xFEB5, 0xFEB7, 0xFEB8, 0xFEB6}},      // ARABIC LETTER SHEEN
	{0x0635, Forms{0xFEB9, 0xFEBB, 0xFEBC, 0xFEBA}},      // ARABIC LETTER SAD
	{0x0636, Forms{0xFEBD, 0xFEBF, 0xFEC0, 0xFEBE}},      // ARABIC LETTER DAD
	{0x0637, Forms{0xFEC1, 0xFEC3, 0xFEC4, 0xFEC2}},      // ARABIC LETTER TAH
	{0x0638, Forms{0xFEC5, 0xFEC7, 0xFEC8, 0xFEC6}},      // ARABIC LETTER ZAH
	{0x0639, Forms{0xFEC9, 0xFECB, 0xFECC, 0xFECA}},      // ARABIC LETTER AIN
	{0x063A, Forms{0xFECD, 0xFECF, 0xFED0, 0xFECE}},      // ARABIC LETTER GHAIN
	{Tatweel, Forms{Tatweel, Tatweel, Tatweel, Tatweel}}, // ARABIC TATWEEL
	{0x0641, Forms{0xFED1, 0xFED3, 0xFED4, 0xFED2}},      // ARABIC LETTER FEH
	{0x0642, Forms{0xFED5, 0xFED7, 0xFED8, 0xFED6}},      // ARABIC LETTER QAF
	{0x0643, Forms{0xFED9, 0xFEDB, 0xFEDC, 0xFEDA}},      // ARABIC LETTER KAF
	{0x0644, Forms{0xFEDD, 0xFEDF, 0xFEE0, 0xFEDE}},      // ARABIC LETTER LAM
	{0x0645, Forms{0xFEE1, 0xFEE3, 0xFEE4, 0xFEE2}},      // ARABIC LETTER MEEM
	{0x0646, Forms{0xFEE5, 0xFEE7, 0xFEE8, 0xFEE6}},      // ARABIC LETTER NOON
	{0x0647, Forms{0xFEE9, 0xFEEB, 0xFEEC, 0xFEEA}},      // ARABIC LETTER HEH
	{0x0648, Forms{0xFEED, 0, 0, 0xFEEE}},                // ARABIC LETTER WAW
	{0x0649, Forms{0xFEEF, 0xFBE8, 0xFBE9, 0xFEF0}},      // ARABIC LETTER ALEF MAKSURA
	{0x064A, Forms{0xFEF1, 0xFEF3, 0xFEF4, 0xFEF2}},      // ARABIC LETTER YEH
	{0x0671, Forms{0xFB50, 0, 0, 0xFB51}},                // ARABIC LETTER ALEF WASLA
	{0x0677, Forms{0xFBDD, 0, 0, 0}},                     // ARABIC LETTER U WITH HAMZA ABOVE
	{0x0679, Forms{0xFB66, 0xFB68, 0xFB69, 0xFB67}},      // ARABIC LETTER TTEH
	{0x067A, Forms{0xFB5E, 0xFB60, 0xFB61, 0xFB5F}},      // ARABIC LETTER TTEHEH
	{0x067B, Forms{0xFB52, 0xFB54, 0xFB55, 0xFB53}},      // ARABIC LETTER BEEH
	{0x067E, Forms{0xFB56, 0xFB58, 0xFB59, 0xFB57}},      // ARABIC LETTER PEH
	{0x067F, Forms{0xFB62, 0xFB64, 0xFB65, 0xFB63}},      // ARABIC LETTER TEHEH
	{0x0680, Forms{0xFB5A, 0xFB5C, 0xFB5D, 0xFB5B}},      // ARABIC LETTER BEHEH
	{0x0683, Forms{0xFB76, 0xFB78, 0xFB79, 0xFB77}},      // ARABIC LETTER NYEH
	{0x0684, Forms{0xFB72, 0xFB74, 0xFB75, 0xFB73}},      // ARABIC LETTER DYEH
	{0x0686, Forms{0xFB7A, 0xFB7C, 0xFB7D, 0xFB7B}},      // ARABIC LETTER TCHEH
	{0x0687, Forms{0xFB7E, 0xFB80, 0xFB81, 0xFB7F}},      // ARABIC LETTER TCHEHEH
	{0x0688, Forms{0xFB88, 0, 0, 0xFB89}},                // ARABIC LETTER DDAL
	{0x068C, Forms{0xFB84, 0, 0, 0xFB85}},                // ARABIC LETTER DAHAL
	{0x068D, Forms{0xFB82, 0, 0, 0xFB83}},                // ARABIC LETTER DDAHAL
	{0x068E, Forms{0xFB86, 0, 0, 0xFB87}},                // ARABIC LETTER DUL
	{0x0691, Forms{0xFB8C, 0, 0, 0xFB8D}},                // ARABIC LETTER RREH
	{0x0698, Forms{0xFB8A, 0, 0, 0xFB8B}},                // ARABIC LETTER JEH
	{0x06A4, Forms{0xFB6A, 0xFB6C, 0xFB6D, 0xFB6B}},      // ARABIC LETTER VEH
	{0x06A6, Forms{0xFB6E, 0xFB70, 0xFB71, 0xFB6F}},      // ARABIC LETTER PEHEH
	{0x06A9, Forms{0xFB8E, 0xFB90, 0xFB91, 0xFB8F}},      // ARABIC LETTER KEHEH
	{0x06AD, Forms{0xFBD3, 0xFBD5, 0xFBD6, 0xFBD4}},      // ARABIC LETTER NG
	{0x06AF, Forms{0xFB92, 0xFB94, 0xFB95, 0xFB93}},      // ARABIC LETTER GAF
	{0x06B1, Forms{0xFB9A, 0xFB9C, 0xFB9D, 0xFB9B}},      // ARABIC LETTER NGOEH
	{0x06B3, Forms{0xFB96, 0xFB98, 0xFB99, 0xFB97}},      // ARABIC LETTER GUEH
	{0x06BA, Forms{0xFB9E, 0, 0, 0xFB9F}},                // ARABIC LETTER NOON GHUNNA
	{0x06BB, Forms{0xFBA0, 0xFBA2, 0xFBA3, 0xFBA1}},      // ARABIC LETTER RNOON
	{0x06BE, Forms{0xFBAA, 0xFBAC, 0xFBAD, 0xFBAB}},      // ARABIC LETTER HEH DOACHASHMEE
	{0x06C0, Forms{0xFBA4, 0, 0, 0xFBA5}},                // ARABIC LETTER HEH WITH YEH ABOVE
	{0x06C1, Forms{0xFBA6, 0xFBA8, 0xFBA9, 0xFBA7}},      // ARABIC LETTER HEH GOAL
	{0x06C5, Forms{0xFBE0, 0, 0, 0xFBE1}},                // ARABIC LETTER KIRGHIZ OE
	{0x06C6, Forms{0xFBD9, 0, 0, 0xFBDA}},                // ARABIC LETTER OE
	{0x06C7, Forms{0xFBD7, 0, 0, 0xFBD8}},                // ARABIC LETTER U
	{0x06C8, Forms{0xFBDB, 0, 0, 0xFBDC}},                // ARABIC LETTER YU
	{0x06C9, Forms{0xFBE2, 0, 0, 0xFBE3}},                // ARABIC LETTER KIRGHIZ YU
	{0x06CB, Forms{0xFBDE, 0, 0, 0xFBDF}},                // ARABIC LETTER VE
	{0x06CC, Forms{0xFBFC, 0xFBFE, 0xFBFF, 0xFBFD}},      // ARABIC LETTER FARSI YEH
	{0x06D0, Forms{0xFBE4, 0xFBE6, 0xFBE7, 0xFBE5}},      // ARABIC LETTER E
	{0x06D2, Forms{0xFBAE, 0, 0, 0xFBAF}},                // ARABIC LETTER YEH BARREE
	{0x06D3, Forms{0xFBB0, 0, 0, 0xFBB1}},                // ARABIC LETTER YEH BARREE WITH HAMZA ABOVE
	{ZWJ, Forms{ZWJ, ZWJ, ZWJ, ZWJ}},                     // ZERO WIDTH JOINER
}

type letterTable struct {
	forms   map[rune]Forms
	joining map[rune]JoiningType
	bases   map[rune]presentation // presentation form → base letter
	order   []rune                // keys in ascending order
}

type presentation struct {
	base rune
	pos  Position
}

var (
	tableOnce sync.Once
	table     *letterTable
)

// theTable returns the process-wide letter table, building it on first use.
func theTable() *letterTable {
	tableOnce.Do(func() {
		table = buildTable()
	})
	return table
}

func buildTable() *letterTable {
	t := &letterTable{
		forms:   make(map[rune]Forms, len(letterData)),
		joining: make(map[rune]JoiningType, len(letterData)),
		bases:   make(map[rune]presentation, 4*len(letterData)),
		order:   make([]rune, 0, len(letterData)),
	}
	for _, entry := range letterData {
		if entry.forms[Isolated] == NoForm {
			panic("letters: entry without isolated form") // corrupt letterData
		}
		t.forms[entry.base] = entry.forms
		t.joining[entry.base] = Classify(entry.forms)
		t.order = append(t.order, entry.base)
		if entry.base == Tatweel || entry.base == ZWJ {
			continue
		}
		for _, p := range Positions {
			if pres := entry.forms[p]; pres != NoForm {
				t.bases[pres] = presentation{base: entry.base, pos: p}
			}
		}
	}
	slices.Sort(t.order)
	tracer().Debugf("letter table built: %d entries, %d presentation forms",
		len(t.forms), len(t.bases))
	return t
}

// Lookup returns the presentation forms of letter. If letter has no Arabic
// shaping behaviour (Latin letters, digits, most punctuation), Lookup returns
// false. This is a regular outcome: callers should pass such characters
// through unchanged.
func Lookup(letter rune) (Forms, bool) {
	forms, ok := theTable().forms[letter]
	return forms, ok
}

// IsLetter is true if the table defines shaping for letter.
func IsLetter(letter rune) bool {
	_, ok := theTable().forms[letter]
	return ok
}

// FormOf returns the presentation form of letter for position p. It returns
// false if letter is not in the table or has no form for p. There is no
// fallback to the isolated form; this is up to the caller.
func FormOf(letter rune, p Position) (rune, bool) {
	forms, ok := Lookup(letter)
	if !ok {
		return NoForm, false
	}
	r := forms.Form(p)
	return r, r != NoForm
}

// Base maps a presentation form back to its base letter and the position it
// represents. Tatweel and ZWJ are not presentation forms and yield false.
func Base(presentationForm rune) (rune, Position, bool) {
	pres, ok := theTable().bases[presentationForm]
	if !ok {
		return NoForm, Unshaped, false
	}
	return pres.base, pres.pos, true
}

// All iterates over all entries of the table, in ascending order of the
// base letter. The two control entries are included.
func All() iter.Seq2[rune, Forms] {
	t := theTable()
	return func(yield func(rune, Forms) bool) {
		for _, letter := range t.order {
			if !yield(letter, t.forms[letter]) {
				return
			}
		}
	}
}

// Len returns the number of entries in the table, control entries included.
func Len() int {
	return len(theTable().forms)
}
