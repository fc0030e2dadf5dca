package main

import (
	"errors"
	"testing"

	"github.com/npillmayer/arabletters/letters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseLetter(t *testing.T) {
	for _, c := range []struct {
		arg  string
		want rune
	}{
		{"U+0628", '\u0628'},
		{"u+fe92", 0xFE92},
		{"0x0627", '\u0627'},
		{"\u0628", '\u0628'},
		{"A", 'A'},
		{"tatweel", letters.Tatweel},
		{"ZWJ", letters.ZWJ},
	} {
		r, err := parseLetter(c.arg)
		if err != nil {
			t.Errorf("parseLetter(%q) failed: %v", c.arg, err)
			continue
		}
		if r != c.want {
			t.Errorf("parseLetter(%q) = %U, want %U", c.arg, r, c.want)
		}
	}
	for _, arg := range []string{"U+XYZ", "0xD800", "beh", "U+110000"} {
		if _, err := parseLetter(arg); !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("parseLetter(%q) should fail with ErrInvalidLetter, got %v", arg, err)
		}
	}
	if _, err := parseLetter(""); !errors.Is(err, ErrNoLetter) {
		t.Errorf("expected ErrNoLetter for empty argument, got %v", err)
	}
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabletters")
	defer teardown()
	//
	intp := &Intp{}
	cmd, err := intp.parseCommand("lookup:U+0628 join frobnicate list:R")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.count != 4 {
		t.Fatalf("expected 4 steps, have %d", cmd.count)
	}
	want := []Op{{LOOKUP, "U+0628"}, {JOIN, ""}, {HELP, ""}, {LIST, "R"}}
	for i, op := range want {
		if cmd.op[i] != op {
			t.Errorf("step %d = %v, want %v", i, cmd.op[i], op)
		}
	}
	if cmd.op[4].code != NOOP {
		t.Errorf("expected step 4 to be NOOP, is %d", cmd.op[4].code)
	}
}

func TestLetterArgRemembersLetter(t *testing.T) {
	intp := &Intp{}
	if _, err := intp.letterArg(&Op{code: JOIN}); !errors.Is(err, ErrNoLetter) {
		t.Errorf("expected ErrNoLetter without previous letter, got %v", err)
	}
	if r, err := intp.letterArg(&Op{code: LOOKUP, arg: "U+062F"}); err != nil || r != '\u062F' {
		t.Fatalf("letterArg = %U/%v, want DAL", r, err)
	}
	if r, err := intp.letterArg(&Op{code: JOIN}); err != nil || r != '\u062F' {
		t.Errorf("expected JOIN to use previous letter DAL, got %U/%v", r, err)
	}
	if intp.String() != "( letter=U+062F )" {
		t.Errorf("unexpected interpreter state %s", intp)
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	if err, _ := listOp(&Intp{}, &Op{code: LIST, arg: "X"}); err == nil {
		t.Error("expected error for joining type X")
	}
	if err, _ := listOp(&Intp{}, &Op{code: LIST, arg: "DR"}); err == nil {
		t.Error("expected error for joining type DR")
	}
}
