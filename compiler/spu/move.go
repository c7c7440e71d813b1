package spu

import (
	"github.com/slowlang/spu/compiler/asm"
)

// IsMove reports whether in is a register to register copy.
//
// Primarily ORI and OR are emitted for copies, but adding or or-ing zero
// and or-ing a register with itself are moves as well.
func (ii *InstrInfo) IsMove(in *asm.Instr) (m asm.Move, ok bool, err error) {
	switch ii.Pattern(in.Op) {
	case ImmMove:
		return ii.immMove(in)
	case FrameAddMove:
		return ii.frameAddMove(in)
	case RegOrMove:
		return ii.regOrMove(in)
	}

	return m, false, nil
}

// OP dst, src, imm
func (ii *InstrInfo) immMove(in *asm.Instr) (m asm.Move, ok bool, err error) {
	if err = ii.argc(in, 3); err != nil {
		return
	}

	dst, err := ii.reg(in, 0)
	if err != nil {
		return
	}

	src, err := ii.reg(in, 1)
	if err != nil {
		return
	}

	x, err := ii.imm(in, 2)
	if err != nil {
		return
	}

	if x != 0 {
		return m, false, nil
	}

	return asm.Move{Src: src, Dst: dst}, true, nil
}

// AIr32 dst, src|fi, imm
//
// A frame index as the source is an address materialization, not a copy.
func (ii *InstrInfo) frameAddMove(in *asm.Instr) (m asm.Move, ok bool, err error) {
	if err = ii.argc(in, 3); err != nil {
		return
	}

	dst, ok0 := in.Args[0].(asm.Reg)
	src, ok1 := in.Args[1].(asm.Reg) // asm.FrameIndex is not a move
	x, ok2 := in.Args[2].(asm.Imm)

	if !ok0 || !ok1 || !ok2 || x != 0 {
		return m, false, nil
	}

	return asm.Move{Src: src, Dst: dst}, true, nil
}

// OR dst, a, b
func (ii *InstrInfo) regOrMove(in *asm.Instr) (m asm.Move, ok bool, err error) {
	if err = ii.argc(in, 3); err != nil {
		return
	}

	var r [3]asm.Reg

	for i := range r {
		r[i], err = ii.reg(in, i)
		if err != nil {
			return
		}
	}

	if r[1] != r[2] {
		return m, false, nil
	}

	return asm.Move{Src: r[1], Dst: r[0]}, true, nil
}
