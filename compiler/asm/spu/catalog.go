package spu

import "github.com/slowlang/spu/compiler/asm"

type (
	catalog struct {
		byName  map[string]asm.Op
		classes map[string]*asm.RegClass
	}
)

const NumRegs = 128

const (
	LR asm.Reg = 0
	SP asm.Reg = 1
)

// Register classes. Every class spans the whole register file,
// they differ in how many bits of the quadword they use.
var (
	R8C    = regClass("R8C", 8)
	R16C   = regClass("R16C", 16)
	R32C   = regClass("R32C", 32)
	R32FP  = regClass("R32FP", 32)
	R64C   = regClass("R64C", 64)
	R64FP  = regClass("R64FP", 64)
	GPRC   = regClass("GPRC", 128)
	R128C  = regClass("R128C", 128)
	VECREG = regClass("VECREG", 128)

	RegClasses = []*asm.RegClass{R8C, R16C, R32C, R32FP, R64C, R64FP, GPRC, R128C, VECREG}
)

// Catalog is the SPU instruction set description.
var Catalog asm.Catalog = newCatalog()

func newCatalog() *catalog {
	c := &catalog{
		byName:  make(map[string]asm.Op, NumOps),
		classes: make(map[string]*asm.RegClass, len(RegClasses)),
	}

	for op, d := range descs {
		c.byName[d.Name] = asm.Op(op)
	}

	for _, rc := range RegClasses {
		c.classes[rc.Name] = rc
	}

	return c
}

func (c *catalog) Len() int { return NumOps }

func (c *catalog) Desc(op asm.Op) *asm.Desc {
	if op < 0 || int(op) >= NumOps {
		return nil
	}

	return &descs[op]
}

func (c *catalog) Lookup(name string) (asm.Op, bool) {
	op, ok := c.byName[name]
	if !ok {
		return asm.NoOp, false
	}

	return op, true
}

func (c *catalog) RegClass(name string) *asm.RegClass {
	return c.classes[name]
}

func Name(op asm.Op) string {
	if op < 0 || int(op) >= NumOps {
		return "<unknown>"
	}

	return descs[op].Name
}

func regClass(name string, size int) *asm.RegClass {
	rc := &asm.RegClass{
		Name: name,
		Size: size,
		Regs: make([]asm.Reg, NumRegs),
	}

	for i := range rc.Regs {
		rc.Regs[i] = asm.Reg(i)
	}

	return rc
}
