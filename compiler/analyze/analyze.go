package analyze

import (
	"context"

	"nikand.dev/go/heap"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"

	"github.com/slowlang/spu/compiler/asm"
	"github.com/slowlang/spu/compiler/set"
)

type (
	// Report is what target independent passes learn about a func
	// through asm.InstrInfo queries.
	Report struct {
		Func string

		Moves   []Move
		Spills  []Slot
		Reloads []Slot

		Slots set.Bits[asm.FrameIndex]
		Usage []SlotUsage // hottest first

		PointerRegClass *asm.RegClass
	}

	Move struct {
		Index int
		asm.Move

		Identity bool // src == dst, can be deleted
	}

	Slot struct {
		Index int
		asm.Slot
	}

	SlotUsage struct {
		Frame   asm.FrameIndex
		Spills  int
		Reloads int
	}
)

// Func classifies every instruction of f.
// Contract violation reported by ii stops the analysis.
func Func(ctx context.Context, ii asm.InstrInfo, f *asm.Func) (r *Report, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "analyze: func", "name", f.Name, "instrs", len(f.Body))
	defer tr.Finish("err", &err)

	r = &Report{
		Func:            f.Name,
		PointerRegClass: ii.PointerRegClass(),
	}

	for i := range f.Body {
		in := &f.Body[i]

		err = r.instr(ctx, ii, i, in)
		if err != nil {
			return nil, errors.Wrap(err, "instr %d (line %d)", i, in.Line)
		}
	}

	r.Slots, err = r.slotSet()
	if err != nil {
		return nil, err
	}

	r.Usage = r.slotUsage()

	if tr.If("dump_report") {
		tr.Printw("report", "moves", len(r.Moves), "spills", len(r.Spills), "reloads", len(r.Reloads), "slots", r.Slots)

		for _, u := range r.Usage {
			tr.Printw("slot usage", "fi", u.Frame, "spills", u.Spills, "reloads", u.Reloads)
		}
	}

	return r, nil
}

// Package analyzes every func and stops on the first error.
func Package(ctx context.Context, ii asm.InstrInfo, fs []*asm.Func) (rs []*Report, err error) {
	for _, f := range fs {
		r, err := Func(ctx, ii, f)
		if err != nil {
			return nil, errors.Wrap(err, "func %q", f.Name)
		}

		rs = append(rs, r)
	}

	return rs, nil
}

func (r *Report) instr(ctx context.Context, ii asm.InstrInfo, i int, in *asm.Instr) error {
	tr := tlog.SpanFromContext(ctx)

	m, ok, err := ii.IsMove(in)
	if err != nil {
		return errors.Wrap(err, "is move")
	}

	if ok {
		tr.V("classify").Printw("move", "i", i, "move", m)

		r.Moves = append(r.Moves, Move{Index: i, Move: m, Identity: m.Src == m.Dst})

		return nil
	}

	s, ok, err := ii.IsLoadFromStackSlot(in)
	if err != nil {
		return errors.Wrap(err, "is load from stack slot")
	}

	if ok {
		tr.V("classify").Printw("reload", "i", i, "slot", s)

		r.Reloads = append(r.Reloads, Slot{Index: i, Slot: s})

		return nil
	}

	s, ok, err = ii.IsStoreToStackSlot(in)
	if err != nil {
		return errors.Wrap(err, "is store to stack slot")
	}

	if ok {
		tr.V("classify").Printw("spill", "i", i, "slot", s)

		r.Spills = append(r.Spills, Slot{Index: i, Slot: s})
	}

	return nil
}

// MaxSlotSpan bounds the distance between the lowest and the highest
// frame index of a func. Slots is a dense set.
const MaxSlotSpan = 1 << 16

func (r *Report) slotSet() (set.Bits[asm.FrameIndex], error) {
	var lo, hi asm.FrameIndex

	for _, l := range [][]Slot{r.Spills, r.Reloads} {
		for _, s := range l {
			lo = min(lo, s.Frame)
			hi = max(hi, s.Frame)
		}
	}

	if int64(hi)-int64(lo) >= MaxSlotSpan {
		return set.Bits[asm.FrameIndex]{}, errors.New("frame indices span too wide: %v..%v", lo, hi)
	}

	b := set.MakeBits(lo)

	for _, l := range [][]Slot{r.Spills, r.Reloads} {
		for _, s := range l {
			b.Set(s.Frame)
		}
	}

	return b, nil
}

func (r *Report) slotUsage() []SlotUsage {
	idx := map[asm.FrameIndex]int{}
	var us []SlotUsage

	get := func(fi asm.FrameIndex) *SlotUsage {
		j, ok := idx[fi]
		if !ok {
			j = len(us)
			idx[fi] = j
			us = append(us, SlotUsage{Frame: fi})
		}

		return &us[j]
	}

	for _, s := range r.Spills {
		get(s.Frame).Spills++
	}

	for _, s := range r.Reloads {
		get(s.Frame).Reloads++
	}

	h := heap.Heap[SlotUsage]{Less: usageLess}

	for _, u := range us {
		h.Push(u)
	}

	res := make([]SlotUsage, 0, h.Len())

	for h.Len() != 0 {
		res = append(res, h.Pop())
	}

	return res
}

func usageLess(d []SlotUsage, i, j int) bool {
	a, b := d[i].Spills+d[i].Reloads, d[j].Spills+d[j].Reloads
	if a != b {
		return a > b
	}

	return d[i].Frame < d[j].Frame
}

func (u SlotUsage) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 3)
	b = e.AppendKeyInt64(b, "fi", int64(u.Frame))
	b = e.AppendKeyInt(b, "spills", u.Spills)
	b = e.AppendKeyInt(b, "reloads", u.Reloads)

	return b
}
