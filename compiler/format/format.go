package format

import (
	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/spu/compiler/analyze"
	"github.com/slowlang/spu/compiler/asm"
)

// Instr appends in in listing syntax.
func Instr(b []byte, cat asm.Catalog, in *asm.Instr) ([]byte, error) {
	d := cat.Desc(in.Op)
	if d == nil {
		return nil, errors.New("unknown opcode: %d", int(in.Op))
	}

	b = append(b, d.Name...)

	for i, x := range in.Args {
		if i == 0 {
			b = append(b, ' ')
		} else {
			b = append(b, ", "...)
		}

		var err error

		b, err = Operand(b, x)
		if err != nil {
			return nil, errors.Wrap(err, "operand %d", i)
		}
	}

	return b, nil
}

func Operand(b []byte, x asm.Operand) ([]byte, error) {
	switch x := x.(type) {
	case asm.Reg:
		b = append(b, x.String()...)
	case asm.Imm:
		b = hfmt.Appendf(b, "%d", int64(x))
	case asm.FrameIndex:
		b = append(b, x.String()...)
	case asm.Sym:
		b = append(b, x...)
	default:
		return nil, errors.New("unsupported operand: %T", x)
	}

	return b, nil
}

// Func appends the whole func as listing.
func Func(b []byte, cat asm.Catalog, f *asm.Func) (_ []byte, err error) {
	if f.Name != "" {
		b = app(b, 0, "func %s:\n", f.Name)
	}

	for i := range f.Body {
		b = app(b, 1, "")

		b, err = Instr(b, cat, &f.Body[i])
		if err != nil {
			return nil, errors.Wrap(err, "instr %d", i)
		}

		b = append(b, '\n')
	}

	return b, nil
}

// Report appends human readable analysis results.
func Report(b []byte, cat asm.Catalog, f *asm.Func, r *analyze.Report) (_ []byte, err error) {
	name := r.Func
	if name == "" {
		name = "<anonymous>"
	}

	b = app(b, 0, "func %s: %d instrs, pointer class %s\n", name, len(f.Body), r.PointerRegClass.Name)

	if len(r.Moves) != 0 {
		b = app(b, 1, "moves:\n")

		for _, m := range r.Moves {
			b, err = line(b, cat, f, m.Index)
			if err != nil {
				return nil, err
			}

			b = hfmt.Appendf(b, "\t// %v <- %v", m.Dst, m.Src)

			if m.Identity {
				b = append(b, " (identity)"...)
			}

			b = append(b, '\n')
		}
	}

	for _, x := range []struct {
		name string
		l    []analyze.Slot
	}{
		{"spills", r.Spills},
		{"reloads", r.Reloads},
	} {
		if len(x.l) == 0 {
			continue
		}

		b = app(b, 1, "%s:\n", x.name)

		for _, s := range x.l {
			b, err = line(b, cat, f, s.Index)
			if err != nil {
				return nil, err
			}

			b = hfmt.Appendf(b, "\t// %v %v\n", s.Reg, s.Frame)
		}
	}

	if len(r.Usage) != 0 {
		b = app(b, 1, "slots:\n")

		for _, u := range r.Usage {
			b = app(b, 2, "%v\tspills %d\treloads %d\n", u.Frame, u.Spills, u.Reloads)
		}
	}

	return b, nil
}

func line(b []byte, cat asm.Catalog, f *asm.Func, i int) (_ []byte, err error) {
	b = app(b, 2, "%4d: ", i)

	b, err = Instr(b, cat, &f.Body[i])
	if err != nil {
		return nil, errors.Wrap(err, "instr %d", i)
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
