package ucd

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/arabletters/letters"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

// Severity represents the severity level of a discrepancy.
type Severity int

const (
	// SeverityCritical: the table will produce a wrong glyph.
	SeverityCritical Severity = iota
	// SeverityMajor: a letter or form is missing, text will be left unshaped.
	SeverityMajor
	// SeverityMinor: cosmetic issue, shaping is not affected.
	SeverityMinor
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// Discrepancy is a difference between a table entry and the Unicode
// Character Database.
type Discrepancy struct {
	Letter   rune             // base letter of the table entry
	Position letters.Position // affected slot, or Unshaped for the entry as a whole
	Issue    string           // human-readable description
	Severity Severity
}

// Error implements the error interface.
func (d Discrepancy) Error() string {
	if d.Position.IsValid() {
		return fmt.Sprintf("[%s] %U/%s: %s", d.Severity, d.Letter, d.Position, d.Issue)
	}
	return fmt.Sprintf("[%s] %U: %s", d.Severity, d.Letter, d.Issue)
}

// Report is the outcome of Verify.
type Report struct {
	Checked       int // number of table entries inspected
	Discrepancies []Discrepancy
}

// OK is true if no discrepancy of severity major or above has been found.
func (r Report) OK() bool {
	return r.Err() == nil
}

// Err joins all critical and major discrepancies into one error. It returns
// nil if there are none.
func (r Report) Err() error {
	var errs []error
	for _, d := range r.Discrepancies {
		if d.Severity <= SeverityMajor {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

// Count returns the number of discrepancies with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, d := range r.Discrepancies {
		if d.Severity == s {
			n++
		}
	}
	return n
}

func (r *Report) add(letter rune, pos letters.Position, sev Severity, format string, args ...any) {
	r.Discrepancies = append(r.Discrepancies, Discrepancy{
		Letter:   letter,
		Position: pos,
		Issue:    fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

// Verify checks every entry of a letter table against the Unicode Character
// Database. Usually it is called with letters.All().
//
// Every filled slot has to be a presentation form whose name (or
// compatibility decomposition) denotes the entry's base letter and the slot's
// position. Unicode presentation forms missing from a slot are reported, as
// are Arabic letters with presentation forms which have no table entry at
// all. Tatweel and ZWJ have to map every slot onto themselves.
func Verify(all iter.Seq2[rune, letters.Forms]) Report {
	derived := PresentationForms()
	report := Report{}
	seen := make(map[rune]bool, len(derived)+2)
	for letter, forms := range all {
		report.Checked++
		seen[letter] = true
		if letter == letters.Tatweel || letter == letters.ZWJ {
			verifyControl(&report, letter, forms)
			continue
		}
		verifyBase(&report, letter)
		verifyForms(&report, letter, forms, derived[letter])
	}
	missing := make([]rune, 0)
	for base := range derived {
		if !seen[base] {
			missing = append(missing, base)
		}
	}
	slices.Sort(missing)
	for _, base := range missing {
		report.add(base, letters.Unshaped, SeverityMajor,
			"letter %s has presentation forms %v but is missing from table",
			runenames.Name(base), derived[base])
	}
	for _, c := range []rune{letters.Tatweel, letters.ZWJ} {
		if !seen[c] {
			report.add(c, letters.Unshaped, SeverityCritical, "control character missing from table")
		}
	}
	tracer().Infof("verified %d table entries: %d critical, %d major, %d minor",
		report.Checked, report.Count(SeverityCritical), report.Count(SeverityMajor),
		report.Count(SeverityMinor))
	return report
}

func verifyControl(report *Report, c rune, forms letters.Forms) {
	for _, p := range letters.Positions {
		if forms[p] != c {
			report.add(c, p, SeverityCritical, "control character maps to %U instead of itself", forms[p])
		}
	}
}

func verifyBase(report *Report, letter rune) {
	name := runenames.Name(letter)
	if !strings.HasPrefix(name, letterPrefix) {
		report.add(letter, letters.Unshaped, SeverityMajor, "%q is not an Arabic letter", name)
	}
	if script := language.LookupScript(letter); script != language.Arabic {
		report.add(letter, letters.Unshaped, SeverityMajor, "script is %v, not Arabic", script)
	}
	if props, _ := bidi.LookupRune(letter); props.Class() != bidi.AL {
		report.add(letter, letters.Unshaped, SeverityMinor, "bidi class is %d, not AL", props.Class())
	}
}

func verifyForms(report *Report, letter rune, forms, want letters.Forms) {
	if !forms.Has(letters.Isolated) {
		report.add(letter, letters.Isolated, SeverityCritical, "entry has no isolated form")
	}
	for _, p := range letters.Positions {
		slot := forms[p]
		if slot == letters.NoForm {
			if want[p] != letters.NoForm {
				report.add(letter, p, SeverityMajor, "form missing, Unicode has %U", want[p])
			}
			continue
		}
		if !IsPresentationForm(slot) {
			report.add(letter, p, SeverityCritical, "%U is not an Arabic presentation form", slot)
			continue
		}
		name := runenames.Name(slot)
		stem, pos, ok := positionFromName(name)
		if !ok || pos != p {
			report.add(letter, p, SeverityCritical, "slot holds %U %s", slot, name)
			continue
		}
		if base := baseLetter(slot, stem); base != letter {
			report.add(letter, p, SeverityCritical, "slot holds %U, a form of %U", slot, base)
		}
	}
}
