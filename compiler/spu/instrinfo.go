package spu

import (
	"strconv"
	"sync"

	"tlog.app/go/errors"

	"github.com/slowlang/spu/compiler/asm"
	spuasm "github.com/slowlang/spu/compiler/asm/spu"
)

type (
	Pattern uint8

	// InstrInfo implements asm.InstrInfo for the Cell SPU.
	// It's immutable after New and safe for concurrent use.
	InstrInfo struct {
		cat asm.Catalog

		pat []Pattern

		ptrRC *asm.RegClass
	}
)

const (
	None Pattern = iota
	ImmMove
	FrameAddMove
	RegOrMove
	StackLoad
	StackStore
)

const PointerRegClassName = "R32C"

var _ asm.InstrInfo = (*InstrInfo)(nil)

// Opcode families by mnemonic.
// ORI/OR are what copyRegToReg emits, the rest are moves in disguise.
var families = map[Pattern][]string{
	ImmMove: {
		"ORIv4i32", "ORIr32", "ORIr64",
		"ORHIv8i16", "ORHIr16", "ORHI1To2",
		"ORBIv16i8", "ORBIr8",
		"ORI2To4", "ORI1To4",
		"AHIvec", "AHIr16", "AIvec",
	},
	FrameAddMove: {
		"AIr32",
	},
	RegOrMove: {
		"ORv16i8_i8", "ORv8i16_i16", "ORv4i32_i32", "ORv2i64_i64", "ORv4f32_f32", "ORv2f64_f64",
		"ORi8_v16i8", "ORi16_v8i16", "ORi32_v4i32", "ORi64_v2i64", "ORf32_v4f32", "ORf64_v2f64",
		"ORv16i8", "ORv8i16", "ORv4i32",
		"ORr32", "ORr64", "ORf32", "ORf64", "ORgprc",
	},
	StackLoad: {
		"LQDv16i8", "LQDv8i16", "LQDv4i32", "LQDv4f32", "LQDv2f64",
		"LQDr128", "LQDr64", "LQDr32", "LQDr16",
		"LQXv4i32", "LQXr128", "LQXr64", "LQXr32", "LQXr16",
	},
	StackStore: {
		"STQDv16i8", "STQDv8i16", "STQDv4i32", "STQDv4f32", "STQDv2f64",
		"STQDr128", "STQDr64", "STQDr32", "STQDr16",
		"STQXv16i8", "STQXv8i16", "STQXv4i32", "STQXv4f32", "STQXv2f64",
		"STQXr128", "STQXr64", "STQXr32", "STQXr16",
	},
}

var def struct {
	once sync.Once
	ii   *InstrInfo
}

// New builds the opcode pattern table over cat.
func New(cat asm.Catalog) (*InstrInfo, error) {
	ii := &InstrInfo{
		cat: cat,
		pat: make([]Pattern, cat.Len()),
	}

	for p := ImmMove; p <= StackStore; p++ {
		for _, name := range families[p] {
			op, ok := cat.Lookup(name)
			if !ok {
				return nil, errors.New("%v: opcode %v is not in the catalog", p, name)
			}

			if op < 0 || int(op) >= len(ii.pat) {
				return nil, errors.New("%v: opcode %v (%d) is out of catalog range %d", p, name, int(op), len(ii.pat))
			}

			if q := ii.pat[op]; q != None {
				return nil, errors.New("opcode %v is in two families: %v and %v", name, q, p)
			}

			ii.pat[op] = p
		}
	}

	ii.ptrRC = cat.RegClass(PointerRegClassName)
	if ii.ptrRC == nil {
		return nil, errors.New("register class %v is not in the catalog", PointerRegClassName)
	}

	return ii, nil
}

// Default returns InstrInfo over the builtin SPU catalog.
func Default() *InstrInfo {
	def.once.Do(func() {
		ii, err := New(spuasm.Catalog)
		if err != nil {
			panic(err)
		}

		def.ii = ii
	})

	return def.ii
}

func (ii *InstrInfo) Catalog() asm.Catalog { return ii.cat }

// Pattern returns the opcode family op belongs to.
func (ii *InstrInfo) Pattern(op asm.Op) Pattern {
	if op < 0 || int(op) >= len(ii.pat) {
		return None
	}

	return ii.pat[op]
}

// PointerRegClass returns the register class used to hold pointers.
// This is used for addressing modes.
func (ii *InstrInfo) PointerRegClass() *asm.RegClass {
	return ii.ptrRC
}

func (p Pattern) String() string {
	switch p {
	case None:
		return "none"
	case ImmMove:
		return "imm_move"
	case FrameAddMove:
		return "frame_add_move"
	case RegOrMove:
		return "reg_or_move"
	case StackLoad:
		return "stack_load"
	case StackStore:
		return "stack_store"
	}

	return "pattern(" + strconv.Itoa(int(p)) + ")"
}
