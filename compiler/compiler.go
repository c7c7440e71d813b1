package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/spu/compiler/analyze"
	"github.com/slowlang/spu/compiler/asm"
	"github.com/slowlang/spu/compiler/format"
	"github.com/slowlang/spu/compiler/spu"
)

func ClassifyFile(ctx context.Context, name string) (out []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Classify(ctx, spu.Default(), text)
}

// Classify parses listing text and reports what ii says about every func in it.
func Classify(ctx context.Context, ii *spu.InstrInfo, text []byte) (out []byte, err error) {
	cat := ii.Catalog()

	fs, err := asm.Parse(ctx, cat, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	rs, err := analyze.Package(ctx, ii, fs)
	if err != nil {
		return nil, errors.Wrap(err, "analyze")
	}

	for i, r := range rs {
		if i != 0 {
			out = append(out, '\n')
		}

		out, err = format.Report(out, cat, fs[i], r)
		if err != nil {
			return nil, errors.Wrap(err, "format")
		}
	}

	return out, nil
}

func CheckFile(ctx context.Context, name string) (err error) {
	ii := spu.Default()

	fs, err := asm.ParseFile(ctx, ii.Catalog(), name)
	if err != nil {
		return errors.Wrap(err, "parse")
	}

	for _, f := range fs {
		err = asm.CheckFunc(ii.Catalog(), f)
		if err != nil {
			return err
		}
	}

	return nil
}
