package spu

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/spu/compiler/asm"
	spuasm "github.com/slowlang/spu/compiler/asm/spu"
)

func ins(op asm.Op, args ...asm.Operand) *asm.Instr {
	return &asm.Instr{Op: op, Args: args}
}

func newInfo(t testing.TB) *InstrInfo {
	ii, err := New(spuasm.Catalog)
	require.NoError(t, err)

	return ii
}

func opsOf(t testing.TB, p Pattern) (ops []asm.Op) {
	for _, name := range families[p] {
		op, ok := spuasm.Catalog.Lookup(name)
		require.True(t, ok, name)

		ops = append(ops, op)
	}

	return ops
}

func TestPatternTable(t *testing.T) {
	ii := newInfo(t)

	in := map[asm.Op]Pattern{}

	for p := ImmMove; p <= StackStore; p++ {
		for _, op := range opsOf(t, p) {
			assert.Equal(t, p, ii.Pattern(op), "%v", spuasm.Name(op))
			in[op] = p
		}
	}

	for op := asm.Op(0); int(op) < spuasm.NumOps; op++ {
		if _, ok := in[op]; ok {
			continue
		}

		assert.Equal(t, None, ii.Pattern(op), "%v", spuasm.Name(op))
	}

	assert.Equal(t, None, ii.Pattern(asm.NoOp))
	assert.Equal(t, None, ii.Pattern(asm.Op(spuasm.NumOps+10)))

	assert.Len(t, opsOf(t, ImmMove), 13)
	assert.Len(t, opsOf(t, FrameAddMove), 1)
	assert.Len(t, opsOf(t, RegOrMove), 20)
	assert.Len(t, opsOf(t, StackLoad), 14)
	assert.Len(t, opsOf(t, StackStore), 18)
}

func TestImmMove(t *testing.T) {
	ii := newInfo(t)

	for _, op := range opsOf(t, ImmMove) {
		m, ok, err := ii.IsMove(ins(op, asm.Reg(3), asm.Reg(5), asm.Imm(0)))
		require.NoError(t, err)
		assert.True(t, ok, "%v", spuasm.Name(op))
		assert.Equal(t, asm.Move{Src: 5, Dst: 3}, m)

		for _, x := range []asm.Imm{1, -1, 255, 4} {
			_, ok, err = ii.IsMove(ins(op, asm.Reg(3), asm.Reg(5), x))
			require.NoError(t, err)
			assert.False(t, ok, "%v %d", spuasm.Name(op), x)
		}
	}
}

func TestRegOrMove(t *testing.T) {
	ii := newInfo(t)

	for _, op := range opsOf(t, RegOrMove) {
		m, ok, err := ii.IsMove(ins(op, asm.Reg(3), asm.Reg(5), asm.Reg(5)))
		require.NoError(t, err)
		assert.True(t, ok, "%v", spuasm.Name(op))
		assert.Equal(t, asm.Move{Src: 5, Dst: 3}, m)

		_, ok, err = ii.IsMove(ins(op, asm.Reg(3), asm.Reg(5), asm.Reg(6)))
		require.NoError(t, err)
		assert.False(t, ok, "%v", spuasm.Name(op))

		v := asm.VirtBase + 7

		m, ok, err = ii.IsMove(ins(op, asm.VirtBase, v, v))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, asm.Move{Src: v, Dst: asm.VirtBase}, m)
	}
}

func TestFrameAddMove(t *testing.T) {
	ii := newInfo(t)

	for _, tc := range []struct {
		name string
		in   *asm.Instr
		ok   bool
		m    asm.Move
	}{
		{"reg_zero", ins(spuasm.AIr32, asm.Reg(3), asm.Reg(5), asm.Imm(0)), true, asm.Move{Src: 5, Dst: 3}},
		{"reg_nonzero", ins(spuasm.AIr32, asm.Reg(3), asm.Reg(5), asm.Imm(4)), false, asm.Move{}},
		{"frame_zero", ins(spuasm.AIr32, asm.Reg(4), asm.FrameIndex(2), asm.Imm(0)), false, asm.Move{}},
		{"frame_nonzero", ins(spuasm.AIr32, asm.Reg(4), asm.FrameIndex(2), asm.Imm(16)), false, asm.Move{}},
		{"imm_not_imm", ins(spuasm.AIr32, asm.Reg(3), asm.Reg(5), asm.Sym("x")), false, asm.Move{}},
		{"dst_not_reg", ins(spuasm.AIr32, asm.Sym("x"), asm.Reg(5), asm.Imm(0)), false, asm.Move{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, ok, err := ii.IsMove(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.m, m)
		})
	}
}

func TestNotMove(t *testing.T) {
	ii := newInfo(t)

	for _, in := range []*asm.Instr{
		ins(spuasm.MPYr32, asm.Reg(3), asm.Reg(5), asm.Reg(5)),
		ins(spuasm.Ar32, asm.Reg(3), asm.Reg(5), asm.Reg(5)),
		ins(spuasm.ANDr32, asm.Reg(3), asm.Reg(5), asm.Reg(5)),
		ins(spuasm.SFIr32, asm.Reg(3), asm.Reg(5), asm.Imm(0)),
		ins(spuasm.SFHIr16, asm.Reg(3), asm.Reg(5), asm.Imm(0)),
		ins(spuasm.XORIr32, asm.Reg(3), asm.Reg(5), asm.Imm(0)),
		ins(spuasm.BR, asm.Sym(".LBB0_1")),
		ins(spuasm.RET),
		// wrong shapes don't matter outside of move families
		ins(spuasm.MPYr32),
		ins(spuasm.BR, asm.Imm(0), asm.Imm(0), asm.Imm(0), asm.Imm(0)),
		ins(asm.NoOp),
	} {
		_, ok, err := ii.IsMove(in)
		assert.NoError(t, err, "%v", spuasm.Name(in.Op))
		assert.False(t, ok, "%v", spuasm.Name(in.Op))
	}
}

func TestMoveShapeViolation(t *testing.T) {
	ii := newInfo(t)

	for _, tc := range []struct {
		name string
		in   *asm.Instr
		arg  int
	}{
		{"ori_short", ins(spuasm.ORIr32, asm.Reg(3), asm.Reg(5)), -1},
		{"ori_long", ins(spuasm.ORIr32, asm.Reg(3), asm.Reg(5), asm.Imm(0), asm.Imm(0)), -1},
		{"ori_imm_is_reg", ins(spuasm.ORIr32, asm.Reg(3), asm.Reg(5), asm.Reg(6)), 2},
		{"ori_src_is_imm", ins(spuasm.ORIr32, asm.Reg(3), asm.Imm(5), asm.Imm(0)), 1},
		{"ahi_dst_is_frame", ins(spuasm.AHIr16, asm.FrameIndex(1), asm.Reg(5), asm.Imm(0)), 0},
		{"or_short", ins(spuasm.ORr32, asm.Reg(3)), -1},
		{"or_imm", ins(spuasm.ORr32, asm.Reg(3), asm.Reg(5), asm.Imm(0)), 2},
		{"or_frame", ins(spuasm.ORv4i32, asm.Reg(3), asm.FrameIndex(0), asm.Reg(5)), 1},
		{"ai_short", ins(spuasm.AIr32, asm.Reg(3), asm.Reg(5)), -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, ok, err := ii.IsMove(tc.in)
			require.Error(t, err)
			assert.False(t, ok)
			assert.Equal(t, asm.Move{}, m)

			var e *asm.ShapeError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tc.arg, e.Arg)
			assert.Equal(t, spuasm.Name(tc.in.Op), e.Op)
			assert.True(t, asm.IsShapeError(err))
			assert.Contains(t, fmt.Sprintf("%v", e.From), "move.go")
		})
	}
}

func TestStackSlot(t *testing.T) {
	ii := newInfo(t)

	type query func(*asm.Instr) (asm.Slot, bool, error)

	for _, fam := range []struct {
		name  string
		p     Pattern
		q     query
		other query
	}{
		{"load", StackLoad, ii.IsLoadFromStackSlot, ii.IsStoreToStackSlot},
		{"store", StackStore, ii.IsStoreToStackSlot, ii.IsLoadFromStackSlot},
	} {
		t.Run(fam.name, func(t *testing.T) {
			for _, op := range opsOf(t, fam.p) {
				s, ok, err := fam.q(ins(op, asm.Reg(2), asm.Imm(0), asm.FrameIndex(7)))
				require.NoError(t, err)
				assert.True(t, ok, "%v", spuasm.Name(op))
				assert.Equal(t, asm.Slot{Reg: 2, Frame: 7}, s)

				s, ok, err = fam.q(ins(op, asm.Reg(2), asm.Imm(0), asm.FrameIndex(-3)))
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, asm.FrameIndex(-3), s.Frame)

				_, ok, err = fam.q(ins(op, asm.Reg(2), asm.Imm(8), asm.FrameIndex(7)))
				require.NoError(t, err)
				assert.False(t, ok, "nonzero displacement")

				_, ok, err = fam.q(ins(op, asm.Reg(2), asm.Imm(0), spuasm.SP))
				require.NoError(t, err)
				assert.False(t, ok, "register address")

				_, ok, err = fam.q(ins(op, asm.Reg(2), asm.Sym("x"), asm.FrameIndex(7)))
				require.NoError(t, err)
				assert.False(t, ok, "displacement not immediate")

				_, ok, err = fam.other(ins(op, asm.Reg(2), asm.Imm(0), asm.FrameIndex(7)))
				require.NoError(t, err)
				assert.False(t, ok, "wrong opcode family")
			}
		})
	}
}

func TestStackSlotNotInFamily(t *testing.T) {
	ii := newInfo(t)

	for _, op := range []asm.Op{spuasm.STQDr8, spuasm.STQXr8, spuasm.LQAr32, spuasm.STQAr32, spuasm.ORr32, spuasm.AIr32} {
		in := ins(op, asm.Reg(3), asm.Imm(0), asm.FrameIndex(1))

		_, ok, err := ii.IsStoreToStackSlot(in)
		require.NoError(t, err)
		assert.False(t, ok, "%v", spuasm.Name(op))

		_, ok, err = ii.IsLoadFromStackSlot(in)
		require.NoError(t, err)
		assert.False(t, ok, "%v", spuasm.Name(op))
	}

	// operands are not inspected for foreign opcodes
	_, ok, err := ii.IsLoadFromStackSlot(ins(spuasm.MPYr32))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStackSlotShapeViolation(t *testing.T) {
	ii := newInfo(t)

	_, ok, err := ii.IsLoadFromStackSlot(ins(spuasm.LQDr32, asm.Reg(2), asm.Imm(0)))
	assert.False(t, ok)
	assert.True(t, asm.IsShapeError(err), "%v", err)

	_, ok, err = ii.IsStoreToStackSlot(ins(spuasm.STQXr64, asm.Imm(2), asm.Imm(0), asm.FrameIndex(1)))
	assert.False(t, ok)
	assert.True(t, asm.IsShapeError(err), "%v", err)

	// data operand is checked only when the address matched
	_, ok, err = ii.IsStoreToStackSlot(ins(spuasm.STQXr64, asm.Imm(2), asm.Imm(4), asm.FrameIndex(1)))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPointerRegClass(t *testing.T) {
	ii := newInfo(t)

	rc := ii.PointerRegClass()
	require.NotNil(t, rc)

	assert.Same(t, spuasm.R32C, rc)
	assert.Same(t, rc, ii.PointerRegClass())
	assert.Same(t, rc, Default().PointerRegClass())
	assert.Equal(t, "R32C", rc.Name)
	assert.Equal(t, 32, rc.Size)
	assert.True(t, rc.Contains(spuasm.SP))
}

func TestScenarios(t *testing.T) {
	ii := Default()

	m, ok, err := ii.IsMove(ins(spuasm.ORr32, asm.Reg(3), asm.Reg(5), asm.Reg(5)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, asm.Reg(5), m.Src)
	assert.Equal(t, asm.Reg(3), m.Dst)

	_, ok, err = ii.IsMove(ins(spuasm.AIr32, asm.Reg(3), asm.Reg(5), asm.Imm(4)))
	require.NoError(t, err)
	assert.False(t, ok)

	s, ok, err := ii.IsLoadFromStackSlot(ins(spuasm.LQDr32, asm.Reg(2), asm.Imm(0), asm.FrameIndex(7)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, asm.Slot{Reg: 2, Frame: 7}, s)

	_, ok, err = ii.IsLoadFromStackSlot(ins(spuasm.LQDr32, asm.Reg(2), asm.Imm(8), asm.FrameIndex(7)))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoMutation(t *testing.T) {
	ii := Default()

	in := ins(spuasm.ORIr32, asm.Reg(3), asm.Reg(5), asm.Imm(0))
	cp := *in
	cp.Args = append([]asm.Operand(nil), in.Args...)

	for i := 0; i < 3; i++ {
		_, _, _ = ii.IsMove(in)
		_, _, _ = ii.IsLoadFromStackSlot(in)
		_, _, _ = ii.IsStoreToStackSlot(in)
	}

	assert.Equal(t, cp, *in)
}

func TestConcurrent(t *testing.T) {
	ii := Default()

	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			for i := 0; i < 1000; i++ {
				r := asm.Reg(g*100 + i%100)

				m, ok, err := ii.IsMove(ins(spuasm.ORr64, r+1, r, r))
				if !assert.NoError(t, err) || !assert.True(t, ok) {
					return
				}

				assert.Equal(t, asm.Move{Src: r, Dst: r + 1}, m)
			}
		}(g)
	}

	wg.Wait()
}

type badCatalog struct {
	asm.Catalog

	hide string
	neg  string
	rc   bool
}

func (c badCatalog) Lookup(name string) (asm.Op, bool) {
	if name == c.hide {
		return asm.NoOp, false
	}

	if name == c.neg {
		return asm.Op(-5), true
	}

	return c.Catalog.Lookup(name)
}

func (c badCatalog) RegClass(name string) *asm.RegClass {
	if c.rc {
		return nil
	}

	return c.Catalog.RegClass(name)
}

func TestNewIncompleteCatalog(t *testing.T) {
	_, err := New(badCatalog{Catalog: spuasm.Catalog, hide: "ORgprc"})
	assert.ErrorContains(t, err, "ORgprc")

	_, err = New(badCatalog{Catalog: spuasm.Catalog, neg: "LQDr16"})
	assert.ErrorContains(t, err, "LQDr16")

	_, err = New(badCatalog{Catalog: spuasm.Catalog, rc: true})
	assert.ErrorContains(t, err, "R32C")
}
