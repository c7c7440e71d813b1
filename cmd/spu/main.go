package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tebeka/atexit"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/spu/compiler"
	"github.com/slowlang/spu/compiler/asm"
	spuasm "github.com/slowlang/spu/compiler/asm/spu"
	"github.com/slowlang/spu/compiler/spu"
)

func main() {
	classifyCmd := &cli.Command{
		Name:        "classify",
		Description: "report moves, spills and reloads in listing files",
		Action:      classifyAct,
		Args:        cli.Args{},
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "check listing files against opcode operand shapes",
		Action:      checkAct,
		Args:        cli.Args{},
	}

	opsCmd := &cli.Command{
		Name:        "ops",
		Description: "list opcodes and their classification pattern",
		Action:      opsAct,
	}

	regclassCmd := &cli.Command{
		Name:        "regclass",
		Description: "print pointer register class",
		Action:      regclassAct,
	}

	app := &cli.Command{
		Name:        "spu",
		Description: "spu answers target questions about Cell SPU machine instructions",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("v", "", "tlog verbosity topics (classify,dump_report,dump_parse)"),
		},
		Commands: []*cli.Command{
			classifyCmd,
			checkCmd,
			opsCmd,
			regclassCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) error {
	tlog.SetVerbosity(c.String("v"))

	return nil
}

func classifyAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		out, err := compiler.ClassifyFile(ctx, a)
		fatalOnShape(err)
		if err != nil {
			return errors.Wrap(err, "classify %v", a)
		}

		fmt.Printf("%s", out)
	}

	return nil
}

func checkAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		err = compiler.CheckFile(ctx, a)
		fatalOnShape(err)
		if err != nil {
			return errors.Wrap(err, "check %v", a)
		}

		fmt.Printf("%v: ok\n", a)
	}

	return nil
}

func opsAct(c *cli.Command) error {
	ii := spu.Default()

	for op := 0; op < spuasm.NumOps; op++ {
		fmt.Printf("%-14s %v\n", spuasm.Name(asm.Op(op)), ii.Pattern(asm.Op(op)))
	}

	return nil
}

func regclassAct(c *cli.Command) error {
	rc := spu.Default().PointerRegClass()

	fmt.Printf("%s: %d bits, %d registers\n", rc.Name, rc.Size, len(rc.Regs))

	return nil
}

// Malformed instruction means a bug in whoever produced the listing.
// Nothing downstream may trust it, so stop right here.
func fatalOnShape(err error) {
	if err == nil || !asm.IsShapeError(err) {
		return
	}

	atexit.Fatalf("contract violation: %v", err)
}
