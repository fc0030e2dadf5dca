package ucd

import (
	"maps"
	"strings"
	"sync"

	"github.com/npillmayer/arabletters/letters"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

type runeRange struct {
	from, to rune
}

var (
	arabicBlock        = runeRange{0x0600, 0x06FF}
	presentationBlocks = [...]runeRange{
		{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
		{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
	}
)

func (rr runeRange) contains(r rune) bool {
	return r >= rr.from && r <= rr.to
}

// IsPresentationForm is true if r lies in one of the Arabic presentation
// forms blocks.
func IsPresentationForm(r rune) bool {
	for _, block := range presentationBlocks {
		if block.contains(r) {
			return true
		}
	}
	return false
}

const letterPrefix = "ARABIC LETTER "

var positionSuffix = [...]struct {
	suffix string
	pos    letters.Position
}{
	{" ISOLATED FORM", letters.Isolated},
	{" INITIAL FORM", letters.Initial},
	{" MEDIAL FORM", letters.Medial},
	{" FINAL FORM", letters.Final},
}

// positionFromName splits the name of a presentation form of a letter, e.g.
// "ARABIC LETTER BEH MEDIAL FORM", into the name of the base letter and the
// position. Ligatures, marks and symbols yield false.
func positionFromName(name string) (string, letters.Position, bool) {
	if !strings.HasPrefix(name, letterPrefix) {
		return "", letters.Unshaped, false
	}
	for _, ps := range positionSuffix {
		if stem, ok := strings.CutSuffix(name, ps.suffix); ok {
			return stem, ps.pos, true
		}
	}
	return "", letters.Unshaped, false
}

var (
	baseNamesOnce sync.Once
	baseByName    map[string]rune
)

// baseLetter resolves the base letter of presentation form u. The base is
// looked up by name first. Some forms carry names differing from their base
// (e.g., U+FBE8 ARABIC LETTER UIGHUR KAZAKH KIRGHIZ ALEF MAKSURA INITIAL
// FORM); for those the compatibility decomposition is used, re-composed to
// catch letters with hamza or madda.
func baseLetter(u rune, stem string) rune {
	baseNamesOnce.Do(func() {
		baseByName = make(map[string]rune, arabicBlock.to-arabicBlock.from+1)
		for r := arabicBlock.from; r <= arabicBlock.to; r++ {
			if name := runenames.Name(r); name != "" {
				baseByName[name] = r
			}
		}
	})
	if base, ok := baseByName[stem]; ok {
		return base
	}
	decomp := []rune(norm.NFC.String(norm.NFKD.String(string(u))))
	if len(decomp) == 1 && arabicBlock.contains(decomp[0]) {
		return decomp[0]
	}
	return 0
}

var (
	presentationOnce   sync.Once
	presentationByBase map[rune]letters.Forms
)

// PresentationForms returns the forms of every Arabic letter which has
// presentation forms in Unicode, keyed by base letter. The map is derived
// from the Unicode character names and is a fresh copy on every call.
func PresentationForms() map[rune]letters.Forms {
	presentationOnce.Do(func() {
		presentationByBase = buildPresentationFormMap()
	})
	return maps.Clone(presentationByBase)
}

func buildPresentationFormMap() map[rune]letters.Forms {
	out := make(map[rune]letters.Forms, 128)
	for _, block := range presentationBlocks {
		for u := block.from; u <= block.to; u++ {
			stem, pos, ok := positionFromName(runenames.Name(u))
			if !ok {
				continue
			}
			base := baseLetter(u, stem)
			if base == 0 {
				tracer().Debugf("cannot resolve base letter of %U", u)
				continue
			}
			forms := out[base]
			if forms[pos] != letters.NoForm {
				tracer().Debugf("%U: duplicate %s form %U for base %U", u, pos, forms[pos], base)
				continue
			}
			forms[pos] = u
			out[base] = forms
		}
	}
	tracer().Debugf("derived presentation forms for %d letters", len(out))
	return out
}
