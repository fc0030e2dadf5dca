/*
Package letters holds the contextual letterforms of Arabic letters and
classifies their joining behaviour.

Arabic letters take one of four glyph shapes depending on their position
in a connected run: isolated, initial, medial or final. For every base
letter of the Arabic block (U+0621 to U+06D3) that has presentation forms
in Unicode's Arabic Presentation Forms-A/B blocks, this package knows the
presentation code point for each of the four positions. Slots a letter
does not support are empty (NoForm).

Joining behaviour is not stored separately. It is derived from which
slots of a letter are filled:

	medial present            → joins both sides (dual-joining)
	final present             → joins the letter before
	initial present           → joins the letter after
	isolated only             → non-joining

Tatweel (U+0640) and ZWJ (U+200D) are contained as well. They map every
slot to themselves, so that a run scanner treats them as connectors
without changing their appearance.

Deciding which form a letter takes in a run of text is not done here;
this is the job of a reshaping engine, which calls Lookup and the
Connects… predicates.

The table is built once, on first use, and is read-only afterwards. It is
safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package letters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabletters'
func tracer() tracing.Trace {
	return tracing.Select("arabletters")
}
