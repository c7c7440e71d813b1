package asm

import "tlog.app/go/errors"

// Check validates in against the catalog description of its opcode.
func Check(cat Catalog, in *Instr) error {
	d := cat.Desc(in.Op)
	if d == nil {
		return errors.New("unknown opcode: %d", int(in.Op))
	}

	if len(in.Args) != len(d.Args) {
		return NewArgCountError(0, d.Name, len(d.Args), len(in.Args))
	}

	for i, k := range d.Args {
		if !k.Accepts(in.Args[i]) {
			return NewArgKindError(0, d.Name, i, k, in.Args[i])
		}
	}

	return nil
}

// CheckFunc checks every instruction in f and stops on the first violation.
func CheckFunc(cat Catalog, f *Func) error {
	for i := range f.Body {
		err := Check(cat, &f.Body[i])
		if err != nil {
			return errors.Wrap(err, "func %v: instr %d (line %d)", f.Name, i, f.Body[i].Line)
		}
	}

	return nil
}
