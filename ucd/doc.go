/*
Package ucd cross-checks the letter table of package letters against the
Unicode Character Database.

A wrong code point in the letter table does not crash anything; it shows
up as a wrong glyph in rendered text. Package ucd therefore derives the
presentation forms of Arabic letters independently, from the character
names of the Arabic Presentation Forms-A/B blocks and from their
compatibility decompositions, and compares the two.

	report := ucd.Verify(letters.All())
	if err := report.Err(); err != nil {
	    …
	}

Character names and decompositions are taken from golang.org/x/text, the
script property from github.com/go-text/typesetting and the bidi class from
golang.org/x/text/unicode/bidi.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabletters'
func tracer() tracing.Trace {
	return tracing.Select("arabletters")
}
