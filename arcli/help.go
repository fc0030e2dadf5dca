package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "letter", "letters", "lookup":
		pterm.Info.Println("Letters")
		pterm.Println(`
	Letters may be given as U+0628, 0x0628, as a literal character,
	or as one of the names "tatweel" and "zwj".
	Commands without a letter use the letter of the previous command.

	lookup:<letter>   print the four presentation forms of a letter
	base:<form>       find the base letter of a presentation form
	`)
	case "join", "joining":
		pterm.Info.Println("Joining")
		pterm.Println(`
	Joining behaviour is derived from the forms a letter has:
	+------+--------------+--------+-------+
	| Type | Forms        | Before | After |
	+------+--------------+--------+-------+
	|  D   | all four     |  yes   |  yes  |
	|  R   | isol + fina  |  yes   |  no   |
	|  L   | isol + init  |  no    |  yes  |
	|  U   | isol only    |  no    |  no   |
	|  C   | self-mapping |  yes   |  yes  |
	+------+--------------+--------+-------+
	C is used for Tatweel and ZWJ.

	join:<letter>     print the joining type of a letter
	list[:<type>]     list the table, optionally only letters of one type
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Commands are separated by blanks, arguments follow a colon:

	lookup:U+0628 join

	lookup, base, join, list, verify, help[:letters|joining], quit
	`)
	}
}
