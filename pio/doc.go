// Package pio encodes, decodes and disassembles instruction words for the
// RP2040 programmable I/O (PIO) state machines.
//
// An Instruction is one of nine variants (Jmp, Wait, In, Out, Push, Pull,
// Mov, Irq, Set). Every operand field is stored as its pre-shifted bit
// pattern, so the instruction word is the bitwise OR of the opcode tag and
// the fields:
//
//	15 13 12    8 7    5 4    0
//	+----+-------+------+------+
//	| op | delay | arg1 | arg2 |
//	+----+-------+------+------+
//
// PUSH and PULL share opcode tag 100; PULL is marked by bit 7. The delay
// and side-set bits (8-12) are not supported.
//
// Assembly renders an Instruction in pioasm syntax. Jump targets are
// resolved through a Resolver supplied by the caller.
package pio
