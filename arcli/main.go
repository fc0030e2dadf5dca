package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabletters/letters"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'arabletters'
func tracer() tracing.Trace {
	return tracing.Select("arabletters")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.arabletters": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)              // will set the correct level later
	pterm.Info.Println("Welcome to the Arabic letters CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ar > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	pterm.Printf("letter table has %d entries\n", letters.Len())
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	letter rune // letter of the most recent command, 0 if none
}

func (intp *Intp) String() string {
	if intp == nil || intp.letter == 0 {
		return "()"
	}
	return fmt.Sprintf("( letter=%U )", intp.letter)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [16]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	LOOKUP
	JOIN
	BASE
	LIST
	VERIFY
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"lookup": LOOKUP,
	"join":   JOIN,
	"base":   BASE,
	"list":   LIST,
	"verify": VERIFY,
}

var opNames = []string{
	"quit",
	"help",
	"lookup",
	"join",
	"base",
	"list",
	"verify",
}

// parseCommand splits a command line into steps, e.g.
// "lookup:U+0628 join" or "list:R".
func (intp *Intp) parseCommand(line string) (*Command, error) {
	cmd := &Command{}
	for i := range cmd.op {
		cmd.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(cmd.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	cmd.count = len(steps)
	for i, step := range steps {
		name, arg, _ := strings.Cut(step, ":")
		code, ok := opMap[strings.ToLower(name)]
		if !ok {
			code = HELP
			arg = ""
		}
		cmd.op[i] = Op{code: code, arg: arg}
		if code == QUIT {
			return cmd, nil
		}
		if arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], arg)
		}
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	LOOKUP: lookupOp,
	JOIN:   joinOp,
	BASE:   baseOp,
	LIST:   listOp,
	VERIFY: verifyOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// ----------------------------------------------------------------------

var ErrNoLetter = errors.New("no letter given")
var ErrInvalidLetter = errors.New("cannot read letter")

// parseLetter reads a code point in one of the notations U+0628, 0x0628,
// a literal character, or the names "tatweel" and "zwj".
func parseLetter(arg string) (rune, error) {
	if arg == "" {
		return 0, ErrNoLetter
	}
	switch strings.ToLower(arg) {
	case "tatweel":
		return letters.Tatweel, nil
	case "zwj":
		return letters.ZWJ, nil
	}
	if hex, ok := strings.CutPrefix(strings.ToUpper(arg), "U+"); ok {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, arg)
		}
		return rune(n), nil
	}
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		n, err := strconv.ParseUint(arg, 0, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, arg)
		}
		return rune(n), nil
	}
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		if r != utf8.RuneError {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, arg)
}

// letterArg returns the letter given as argument to op, or the letter of the
// most recent command.
func (intp *Intp) letterArg(op *Op) (rune, error) {
	if op.arg == "" {
		if intp.letter == 0 {
			return 0, ErrNoLetter
		}
		return intp.letter, nil
	}
	r, err := parseLetter(op.arg)
	if err != nil {
		return 0, err
	}
	intp.letter = r
	return r, nil
}
