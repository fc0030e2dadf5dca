package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arabletters/letters"
	"github.com/npillmayer/arabletters/ucd"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func lookupOp(intp *Intp, op *Op) (error, bool) {
	r, err := intp.letterArg(op)
	if err != nil {
		return err, false
	}
	forms, ok := letters.Lookup(r)
	if !ok {
		pterm.Printf("%U %s has no Arabic shaping\n", r, runenames.Name(r))
		return nil, false
	}
	pterm.Printf("%U %s\n", r, runenames.Name(r))
	data := [][]string{
		{"Position", "Form", "Name"},
	}
	for _, p := range letters.Positions {
		data = append(data, formRow(p, forms.Form(p)))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func formRow(p letters.Position, form rune) []string {
	if form == letters.NoForm {
		return []string{p.String(), "-", ""}
	}
	return []string{p.String(), fmt.Sprintf("%U", form), runenames.Name(form)}
}

func joinOp(intp *Intp, op *Op) (error, bool) {
	r, err := intp.letterArg(op)
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Letter", "Type", "Before", "After", "Both"},
		{
			fmt.Sprintf("%U", r),
			letters.Joining(r).String(),
			yesNo(letters.ConnectsWithLetterBefore(r)),
			yesNo(letters.ConnectsWithLetterAfter(r)),
			yesNo(letters.ConnectsWithLettersBeforeAndAfter(r)),
		},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func baseOp(intp *Intp, op *Op) (error, bool) {
	pres, err := parseLetter(op.arg)
	if err != nil {
		return err, false
	}
	base, pos, ok := letters.Base(pres)
	if !ok {
		pterm.Printf("%U is not a presentation form of a letter in the table\n", pres)
		return nil, false
	}
	intp.letter = base
	pterm.Printf("%U is the %s form of %U %s\n", pres, pos, base, runenames.Name(base))
	return nil, false
}

// listOp lists the table, optionally filtered by joining type (U, R, L, D, C).
func listOp(intp *Intp, op *Op) (error, bool) {
	filter := strings.ToUpper(op.arg)
	if len(filter) > 1 || (filter != "" && !strings.Contains("URLDC", filter)) {
		return fmt.Errorf("unknown joining type %q, use one of U, R, L, D, C", op.arg), false
	}
	data := [][]string{
		{"Letter", "Type", "Forms", "Name"},
	}
	for letter, forms := range letters.All() {
		jt := letters.Joining(letter)
		if filter != "" && jt.String() != filter {
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("%U", letter), jt.String(), forms.String(), runenames.Name(letter),
		})
	}
	pterm.Printf("%d entries\n", len(data)-1)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func verifyOp(intp *Intp, op *Op) (error, bool) {
	report := ucd.Verify(letters.All())
	for _, d := range report.Discrepancies {
		if d.Severity == ucd.SeverityMinor {
			pterm.Warning.Println(d.Error())
			continue
		}
		pterm.Error.Println(d.Error())
	}
	if report.OK() {
		pterm.Success.Printf("%d entries match the Unicode Character Database\n", report.Checked)
	}
	return nil, false
}
