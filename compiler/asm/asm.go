package asm

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	Op int

	// Reg is a register reference. Physical registers are small numbers,
	// virtual registers start at VirtBase.
	Reg int

	Imm int64

	FrameIndex int

	// Sym is any operand which is neither a register, an immediate nor a frame slot:
	// labels, globals, basic blocks.
	Sym string

	// Operand is one of Reg, Imm, FrameIndex or Sym.
	Operand interface {
		operand()
	}

	Instr struct {
		Op   Op
		Args []Operand

		Line int // listing line, 0 if built in code
	}

	Func struct {
		Name string
		Body []Instr
	}

	Kind int

	// Desc is a catalog entry for one opcode.
	Desc struct {
		Name string
		Args []Kind
	}

	RegClass struct {
		Name string
		Size int // bits
		Regs []Reg
	}

	// Catalog is the instruction set description.
	// It's owned by the target and never changes.
	Catalog interface {
		Len() int
		Desc(op Op) *Desc
		Lookup(name string) (Op, bool)
		RegClass(name string) *RegClass
	}

	Move struct {
		Src Reg
		Dst Reg
	}

	Slot struct {
		Reg   Reg
		Frame FrameIndex
	}

	// InstrInfo answers target specific questions about instructions.
	//
	// ok == false with nil error is a routine negative answer.
	// Non-nil error means the instruction doesn't have the shape its opcode guarantees.
	InstrInfo interface {
		IsMove(in *Instr) (m Move, ok bool, err error)
		IsLoadFromStackSlot(in *Instr) (s Slot, ok bool, err error)
		IsStoreToStackSlot(in *Instr) (s Slot, ok bool, err error)
		PointerRegClass() *RegClass
	}
)

const (
	KindReg Kind = iota
	KindImm
	KindAddr // Reg or FrameIndex
	KindSym
)

const VirtBase Reg = 1 << 20

const NoOp Op = -1

func (Reg) operand()        {}
func (Imm) operand()        {}
func (FrameIndex) operand() {}
func (Sym) operand()        {}

func (r Reg) IsVirtual() bool { return r >= VirtBase }

func (r Reg) String() string {
	if r.IsVirtual() {
		return "%" + strconv.Itoa(int(r-VirtBase))
	}

	switch r {
	case 0:
		return "$lr"
	case 1:
		return "$sp"
	}

	return "$" + strconv.Itoa(int(r))
}

func (x FrameIndex) String() string {
	return "fi#" + strconv.Itoa(int(x))
}

func (k Kind) String() string {
	switch k {
	case KindReg:
		return "register"
	case KindImm:
		return "immediate"
	case KindAddr:
		return "register or frame index"
	case KindSym:
		return "symbol"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// KindOf returns the kind of the operand value.
// FrameIndex is reported as KindAddr.
func KindOf(x Operand) Kind {
	switch x.(type) {
	case Reg:
		return KindReg
	case Imm:
		return KindImm
	case FrameIndex:
		return KindAddr
	default:
		return KindSym
	}
}

// Accepts reports whether operand x fits kind k.
func (k Kind) Accepts(x Operand) bool {
	switch x.(type) {
	case Reg:
		return k == KindReg || k == KindAddr
	case Imm:
		return k == KindImm
	case FrameIndex:
		return k == KindAddr
	case Sym:
		return k == KindSym
	}

	return false
}

func (c *RegClass) Contains(r Reg) bool {
	for _, x := range c.Regs {
		if x == r {
			return true
		}
	}

	return false
}

func (r Reg) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, r.String())
}

func (m Move) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)
	b = e.AppendKeyString(b, "src", m.Src.String())
	b = e.AppendKeyString(b, "dst", m.Dst.String())

	return b
}

func (s Slot) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)
	b = e.AppendKeyString(b, "reg", s.Reg.String())
	b = e.AppendKeyInt64(b, "fi", int64(s.Frame))

	return b
}
