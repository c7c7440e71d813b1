package spu

import (
	"github.com/slowlang/spu/compiler/asm"
)

// IsLoadFromStackSlot reports whether in reloads a register from a stack slot:
//
//	LQD/LQX reg, 0, fi#N
func (ii *InstrInfo) IsLoadFromStackSlot(in *asm.Instr) (s asm.Slot, ok bool, err error) {
	if ii.Pattern(in.Op) != StackLoad {
		return s, false, nil
	}

	return ii.stackSlot(in)
}

// IsStoreToStackSlot reports whether in spills a register to a stack slot:
//
//	STQD/STQX reg, 0, fi#N
func (ii *InstrInfo) IsStoreToStackSlot(in *asm.Instr) (s asm.Slot, ok bool, err error) {
	if ii.Pattern(in.Op) != StackStore {
		return s, false, nil
	}

	return ii.stackSlot(in)
}

// Non-frame address operand means real memory access, not a spill slot.
func (ii *InstrInfo) stackSlot(in *asm.Instr) (s asm.Slot, ok bool, err error) {
	if err = ii.argc(in, 3); err != nil {
		return
	}

	disp, ok1 := in.Args[1].(asm.Imm)
	fi, ok2 := in.Args[2].(asm.FrameIndex)

	if !ok1 || disp != 0 || !ok2 {
		return s, false, nil
	}

	r, err := ii.reg(in, 0)
	if err != nil {
		return
	}

	return asm.Slot{Reg: r, Frame: fi}, true, nil
}

func (ii *InstrInfo) argc(in *asm.Instr, n int) error {
	if len(in.Args) == n {
		return nil
	}

	return asm.NewArgCountError(1, ii.name(in.Op), n, len(in.Args))
}

func (ii *InstrInfo) reg(in *asm.Instr, i int) (asm.Reg, error) {
	if r, ok := in.Args[i].(asm.Reg); ok {
		return r, nil
	}

	return 0, asm.NewArgKindError(1, ii.name(in.Op), i, asm.KindReg, in.Args[i])
}

func (ii *InstrInfo) imm(in *asm.Instr, i int) (asm.Imm, error) {
	if x, ok := in.Args[i].(asm.Imm); ok {
		return x, nil
	}

	return 0, asm.NewArgKindError(1, ii.name(in.Op), i, asm.KindImm, in.Args[i])
}

func (ii *InstrInfo) name(op asm.Op) string {
	if d := ii.cat.Desc(op); d != nil {
		return d.Name
	}

	return "<unknown>"
}
