package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/npillmayer/symnorm"
	"github.com/npillmayer/symnorm/atom"
	"github.com/npillmayer/symnorm/norm"
	"github.com/npillmayer/symnorm/reader"
	"github.com/npillmayer/symnorm/registry"
	"github.com/npillmayer/symnorm/workspace"
)

// Intp is our interpreter object. It owns a registry and a workspace, i.e.
// symbols defined in one line are known in all subsequent lines.
type Intp struct {
	reg  *registry.Registry
	ws   *workspace.Workspace
	norm *norm.Normalizer
	repl *readline.Instance
	last *atom.Atom // most recent result
}

func newIntp() *Intp {
	reg := registry.New()
	ws := workspace.New()
	return &Intp{
		reg:  reg,
		ws:   ws,
		norm: norm.New(ws, reg),
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line) // errors have been displayed already
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either an expression or a command.
// It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	var quit bool
	var err error
	if strings.HasPrefix(line, ":") {
		quit, err = intp.execute(line[1:])
	} else {
		var a *atom.Atom
		if a, err = intp.normalize(line); err == nil {
			intp.printResult(a)
		}
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return quit, err
}

func (intp *Intp) normalize(input string) (*atom.Atom, error) {
	e, err := reader.Parse(input, intp.reg)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("read %s", e)
	r, err := intp.norm.Normalize(e.View())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot normalize %q", input)
	}
	intp.last = r
	return r, nil
}

// operand returns the normalized expression given as a command argument or,
// if there is none, the most recent result.
func (intp *Intp) operand(arg string) (*atom.Atom, error) {
	if arg != "" {
		return intp.normalize(arg)
	}
	if intp.last == nil {
		return nil, errors.New("no expression given and no previous result")
	}
	return intp.last, nil
}

func (intp *Intp) execute(cmdline string) (bool, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return false, errors.New("empty command")
	}
	cmd := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cmdline), cmd))
	tracer().P("cmd", cmd).Debugf("executing with argument %q", rest)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "def":
		return false, intp.define(fields[1:])
	case "tree":
		a, err := intp.operand(rest)
		if err != nil {
			return false, err
		}
		return false, renderTree(a.View(), intp.reg)
	case "expand":
		a, err := intp.operand(rest)
		if err != nil {
			return false, err
		}
		r, err := intp.norm.Expand(a.View())
		if err != nil {
			return false, err
		}
		intp.last = r
		intp.printResult(r)
	case "ring":
		if len(fields) < 2 {
			return false, errors.New("usage: :ring <var>,<var>… [<expr>]")
		}
		vars := intp.variables(fields[1])
		a, err := intp.operand(strings.TrimSpace(strings.TrimPrefix(rest, fields[1])))
		if err != nil {
			return false, err
		}
		r, changed, err := intp.norm.SetCoefficientRing(a.View(), vars)
		if err != nil {
			return false, err
		}
		tracer().Debugf("coefficient ring changed: %v", changed)
		intp.last = r
		intp.printResult(r)
	case "symbols":
		return false, intp.listSymbols()
	default:
		return false, errors.Newf("unknown command :%s", cmd)
	}
	return false, nil
}

// define declares symbols, optionally with function attributes:
//
//    :def f linear
//    :def g antisymmetric
//
func (intp *Intp) define(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: :def <name> [linear|symmetric|antisymmetric]…")
	}
	attrs := make([]symnorm.Attribute, 0, len(args)-1)
	for _, s := range args[1:] {
		a := symnorm.AttributeFromString(s)
		if a == symnorm.NoAttribute {
			return errors.Newf("unknown attribute %q", s)
		}
		attrs = append(attrs, a)
	}
	sym, _ := intp.reg.Define(args[0], attrs...)
	pterm.Info.Printfln("%s : %s", sym.Name(), intp.attributeList(sym.ID))
	return nil
}

// variables resolves a comma separated list of variable names, defining
// unknown ones.
func (intp *Intp) variables(list string) []symnorm.Identifier {
	var vars []symnorm.Identifier
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			sym, _ := intp.reg.ResolveOrDefine(name)
			vars = append(vars, sym.ID)
		}
	}
	return vars
}

func (intp *Intp) attributeList(id symnorm.Identifier) string {
	var attrs []string
	for _, a := range []symnorm.Attribute{symnorm.Linear, symnorm.Symmetric, symnorm.Antisymmetric} {
		if intp.reg.HasAttribute(id, a) {
			attrs = append(attrs, a.String())
		}
	}
	if len(attrs) == 0 {
		return "-"
	}
	return strings.Join(attrs, ", ")
}

func (intp *Intp) listSymbols() error {
	data := pterm.TableData{{"ID", "Name", "Attributes"}}
	intp.reg.Each(func(name string, sym *registry.Symbol) {
		data = append(data, []string{sym.ID.String(), name, intp.attributeList(sym.ID)})
	})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) printResult(a *atom.Atom) {
	pterm.Info.Println(atom.Format(a.View(), intp.reg))
}
