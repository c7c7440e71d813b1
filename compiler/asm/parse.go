package asm

import (
	"bytes"
	"context"
	"os"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	ParseError struct {
		Line int
		Err  error
	}
)

var spaces = newSpaces(' ', '\t', '\r')

func ParseFile(ctx context.Context, cat Catalog, name string) ([]*Func, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Parse(ctx, cat, text)
}

// Parse reads instruction listing.
// Instructions before the first func header go to a func with empty name.
func Parse(ctx context.Context, cat Catalog, text []byte) (fs []*Func, err error) {
	var f *Func

	for n, l := range bytes.Split(text, []byte{'\n'}) {
		l = stripComment(l)

		st := spaces.skip(l, 0)
		end := len(l)

		for end > st && spaces.has(l[end-1]) {
			end--
		}

		l = l[st:end]

		if len(l) == 0 {
			continue
		}

		if name, ok := funcHeader(l); ok {
			f = &Func{Name: name}
			fs = append(fs, f)

			continue
		}

		in, err := parseInstr(cat, l)
		if err != nil {
			return nil, ParseError{Line: n + 1, Err: err}
		}

		in.Line = n + 1

		if f == nil {
			f = &Func{}
			fs = append(fs, f)
		}

		f.Body = append(f.Body, in)
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("dump_parse") {
		for _, f := range fs {
			tr.Printw("parsed func", "name", f.Name, "instrs", len(f.Body))
		}
	}

	return fs, nil
}

func parseInstr(cat Catalog, l []byte) (in Instr, err error) {
	i := 0
	for i < len(l) && !spaces.has(l[i]) {
		i++
	}

	name := string(l[:i])

	op, ok := cat.Lookup(name)
	if !ok {
		return in, errors.New("unknown mnemonic: %q", name)
	}

	in.Op = op

	rest := l[spaces.skip(l, i):]
	if len(rest) == 0 {
		return in, nil
	}

	for j, a := range bytes.Split(rest, []byte{','}) {
		a = a[spaces.skip(a, 0):]
		a = bytes.TrimRight(a, " \t")

		x, err := ParseOperand(string(a))
		if err != nil {
			return in, errors.Wrap(err, "operand %d", j)
		}

		in.Args = append(in.Args, x)
	}

	return in, nil
}

// ParseOperand parses one operand in listing syntax:
// $N, $lr, $sp, %N, fi#N, integer, or a symbol.
func ParseOperand(s string) (Operand, error) {
	if s == "" {
		return nil, errors.New("operand expected")
	}

	switch {
	case s == "$lr":
		return Reg(0), nil
	case s == "$sp":
		return Reg(1), nil
	case s[0] == '$':
		n, err := strconv.ParseUint(s[1:], 10, 8)
		if err != nil || n >= 128 {
			return nil, errors.New("bad register: %q", s)
		}

		return Reg(n), nil
	case s[0] == '%':
		n, err := strconv.ParseUint(s[1:], 10, 31)
		if err != nil {
			return nil, errors.New("bad virtual register: %q", s)
		}

		return VirtBase + Reg(n), nil
	case len(s) > 3 && s[:3] == "fi#":
		n, err := strconv.ParseInt(s[3:], 10, 16)
		if err != nil {
			return nil, errors.New("bad frame index: %q", s)
		}

		return FrameIndex(n), nil
	case s[0] == '-' || s[0] >= '0' && s[0] <= '9':
		return parseImm(s)
	}

	return Sym(s), nil
}

// parseImm accepts decimal and 0x hex only, optionally negative.
func parseImm(s string) (Operand, error) {
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		base = 16
	} else if len(s) > 1 && s[0] == '0' {
		return nil, errors.New("bad immediate: leading zero: %q", s)
	}

	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, errors.New("bad immediate: %q", s)
	}

	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return nil, errors.Wrap(err, "bad immediate")
	}

	if neg {
		if n > 1<<63 {
			return nil, errors.New("bad immediate: -%s out of range", s)
		}

		return Imm(-int64(n)), nil
	}

	if n > 1<<63-1 {
		return nil, errors.New("bad immediate: %s out of range", s)
	}

	return Imm(n), nil
}

func funcHeader(l []byte) (string, bool) {
	const pref = "func "

	if !bytes.HasPrefix(l, []byte(pref)) || l[len(l)-1] != ':' {
		return "", false
	}

	name := l[len(pref) : len(l)-1]
	name = name[spaces.skip(name, 0):]

	return string(bytes.TrimRight(name, " \t")), true
}

func stripComment(l []byte) []byte {
	if p := bytes.Index(l, []byte("//")); p >= 0 {
		l = l[:p]
	}

	if p := bytes.IndexByte(l, ';'); p >= 0 {
		l = l[:p]
	}

	return l
}

func (e ParseError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e ParseError) Unwrap() error { return e.Err }
