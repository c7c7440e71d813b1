/*
Package compiler holds the Cell SPU machine instruction query layer.

Listing Text ->
	asm.Parse ->
Machine Instructions (asm) ->
	spu.InstrInfo queries (moves, spill slots, pointer class) ->
	analyze ->
Report ->
	format ->
Text

Generic passes talk to asm.InstrInfo only, opcodes live in the asm/spu catalog.
*/
package compiler
