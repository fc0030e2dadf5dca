package ucd

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/npillmayer/arabletters/letters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type VerifyTestEnviron struct {
	suite.Suite
	table map[rune]letters.Forms
}

// listen for 'go test' command --> run test methods
func TestVerifyFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabletters")
	defer teardown()
	suite.Run(t, new(VerifyTestEnviron))
}

// run once, before test suite methods
func (env *VerifyTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.table = maps.Collect(letters.All())
}

// each test gets its own copy to corrupt
func (env *VerifyTestEnviron) copyOfTable() map[rune]letters.Forms {
	return maps.Clone(env.table)
}

func sorted(table map[rune]letters.Forms) iter.Seq2[rune, letters.Forms] {
	return func(yield func(rune, letters.Forms) bool) {
		for _, k := range slices.Sorted(maps.Keys(table)) {
			if !yield(k, table[k]) {
				return
			}
		}
	}
}

// --- Tests -----------------------------------------------------------------

func (env *VerifyTestEnviron) TestLetterTableMatchesUnicode() {
	report := Verify(letters.All())
	for _, d := range report.Discrepancies {
		env.T().Logf("%v", d)
	}
	env.Equal(letters.Len(), report.Checked)
	env.Empty(report.Discrepancies)
	env.NoError(report.Err())
	env.True(report.OK())
}

func (env *VerifyTestEnviron) TestDerivedLettersEqualTable() {
	derived := PresentationForms()
	for letter, forms := range env.table {
		if letter == letters.Tatweel || letter == letters.ZWJ {
			continue
		}
		want, ok := derived[letter]
		if env.True(ok, "%U has no presentation forms in Unicode", letter) {
			env.Equal(want, forms, "forms of %U", letter)
		}
	}
	env.Equal(len(env.table)-2, len(derived))
}

func (env *VerifyTestEnviron) TestDerivedForms() {
	derived := PresentationForms()
	env.Equal(letters.Forms{0xFE8F, 0xFE91, 0xFE92, 0xFE90}, derived['\u0628']) // beh
	env.Equal(letters.Forms{0xFE81, 0, 0, 0xFE82}, derived['\u0622'])           // alef with madda
	env.Equal(letters.Forms{0xFBDD, 0, 0, 0}, derived['\u0677'])                // u with hamza above
	env.Equal(letters.Forms{0xFEEF, 0xFBE8, 0xFBE9, 0xFEF0}, derived['\u0649']) // alef maksura
	env.Equal(letters.Forms{0xFBA4, 0, 0, 0xFBA5}, derived['\u06C0'])           // heh with yeh above
}

func (env *VerifyTestEnviron) TestPositionFromName() {
	stem, pos, ok := positionFromName("ARABIC LETTER BEH MEDIAL FORM")
	env.True(ok)
	env.Equal("ARABIC LETTER BEH", stem)
	env.Equal(letters.Medial, pos)
	_, _, ok = positionFromName("ARABIC LIGATURE LAM WITH ALEF FINAL FORM")
	env.False(ok, "ligatures are not letters")
	_, _, ok = positionFromName("ARABIC FATHA ISOLATED FORM")
	env.False(ok, "marks are not letters")
	_, _, ok = positionFromName("ARABIC LETTER BEH")
	env.False(ok, "base letters have no position")
}

func (env *VerifyTestEnviron) TestDetectsSwappedForms() {
	table := env.copyOfTable()
	beh := table['\u0628']
	beh[letters.Initial], beh[letters.Medial] = beh[letters.Medial], beh[letters.Initial]
	table['\u0628'] = beh
	report := Verify(sorted(table))
	env.Equal(2, report.Count(SeverityCritical))
	env.Error(report.Err())
	for _, d := range report.Discrepancies {
		env.Equal('\u0628', d.Letter)
	}
}

func (env *VerifyTestEnviron) TestDetectsFormOfOtherLetter() {
	table := env.copyOfTable()
	teh := table['\u062A']
	teh[letters.Final] = 0xFE90 // beh final
	table['\u062A'] = teh
	report := Verify(sorted(table))
	env.Require().Len(report.Discrepancies, 1)
	d := report.Discrepancies[0]
	env.Equal(SeverityCritical, d.Severity)
	env.Equal(letters.Final, d.Position)
	env.Contains(d.Error(), "U+062A/final")
}

func (env *VerifyTestEnviron) TestDetectsMissingEntries() {
	table := env.copyOfTable()
	delete(table, '\u06A9') // keheh
	delete(table, letters.ZWJ)
	report := Verify(sorted(table))
	env.Equal(1, report.Count(SeverityMajor))
	env.Equal(1, report.Count(SeverityCritical))
	env.False(report.OK())
}

func (env *VerifyTestEnviron) TestDetectsMissingForm() {
	table := env.copyOfTable()
	alef := table['\u0627']
	alef[letters.Final] = letters.NoForm
	table['\u0627'] = alef
	report := Verify(sorted(table))
	env.Require().Len(report.Discrepancies, 1)
	env.Equal(SeverityMajor, report.Discrepancies[0].Severity)
}

func (env *VerifyTestEnviron) TestDetectsBadControl() {
	table := env.copyOfTable()
	table[letters.Tatweel] = letters.Forms{letters.Tatweel, 0, 0, letters.Tatweel}
	report := Verify(sorted(table))
	env.Equal(2, report.Count(SeverityCritical))
}

func (env *VerifyTestEnviron) TestDetectsNonArabicEntry() {
	table := env.copyOfTable()
	table['A'] = letters.Forms{0xFE8F, 0, 0, 0}
	report := Verify(sorted(table))
	env.False(report.OK())
	env.Positive(report.Count(SeverityCritical)) // U+FE8F is a form of beh
	env.Positive(report.Count(SeverityMajor))    // not an Arabic letter
}

func (env *VerifyTestEnviron) TestIsPresentationForm() {
	env.True(IsPresentationForm(0xFB50))
	env.True(IsPresentationForm(0xFEFC))
	env.False(IsPresentationForm('\u0628'))
	env.False(IsPresentationForm(0xFE00))
}
