package pio

import (
	"fmt"
	"strconv"
)

// Resolver names the target of a jump in pioasm text.
//
// The implementations are Label, which names every target the same, and
// ResolverFunc, which maps each address to a name.
type Resolver interface {
	resolve(addr uint8) string
}

// Label resolves every jump target to the same literal text.
type Label string

func (label Label) resolve(addr uint8) string {
	return string(label)
}

// ResolverFunc resolves a jump target address to its text.
type ResolverFunc func(addr uint8) string

func (fn ResolverFunc) resolve(addr uint8) string {
	if fn == nil {
		return strconv.Itoa(int(addr))
	}
	return fn(addr)
}

// LabelMap resolves addresses through labels, and unlabelled addresses as
// decimal numbers.
func LabelMap(labels map[uint8]string) ResolverFunc {
	return func(addr uint8) string {
		if name, ok := labels[addr]; ok {
			return name
		}
		return strconv.Itoa(int(addr))
	}
}

func resolveTarget(resolver Resolver, addr uint8) string {
	if resolver == nil {
		return strconv.Itoa(int(addr))
	}
	return resolver.resolve(addr)
}

// Assembly renders ins as one line of pioasm text.
//
// Jump targets are rendered through resolver, or as decimal addresses if
// resolver is nil.
func Assembly(ins Instruction, resolver Resolver) (text string, err error) {
	if ins == nil {
		err = ErrUnrecognizedOpcode
		return
	}

	return ins.assembly(resolver)
}

// stringOfInstruction renders ins without a resolver. Encodings with no
// pioasm form fall back to a .word directive.
func stringOfInstruction(ins Instruction) string {
	text, err := ins.assembly(nil)
	if err != nil {
		return fmt.Sprintf(".word 0x%04x", ins.Word())
	}
	return text
}

// irqIndexText renders an IRQ index with its relative suffix.
func irqIndexText(index uint8) string {
	text := strconv.Itoa(int(index & irqIndexMask))
	if index&IRQ_REL != 0 {
		text += " rel"
	}
	return text
}

func (ins Jmp) assembly(resolver Resolver) (text string, err error) {
	cond, err := tokenOf("condition", jmpCondToken, ins.cond)
	if err != nil {
		return
	}

	target := resolveTarget(resolver, ins.addr)
	if ins.cond == JMP_ALWAYS {
		text = fmt.Sprintf("jmp %v", target)
	} else {
		text = fmt.Sprintf("jmp %v %v", cond, target)
	}
	return
}

func (ins Wait) assembly(resolver Resolver) (text string, err error) {
	polarity, err := tokenOf("polarity", waitPolarityToken, ins.polarity)
	if err != nil {
		return
	}
	source, err := tokenOf("source", waitSourceToken, ins.source)
	if err != nil {
		return
	}

	index := strconv.Itoa(int(ins.index))
	if ins.source == WAIT_IRQ {
		index = irqIndexText(ins.index)
	}

	text = fmt.Sprintf("wait %v %v %v", polarity, source, index)
	return
}

func (ins In) assembly(resolver Resolver) (text string, err error) {
	source, err := tokenOf("source", inSourceToken, ins.source)
	if err != nil {
		return
	}

	text = fmt.Sprintf("in %v, %d", source, ins.BitCount())
	return
}

func (ins Out) assembly(resolver Resolver) (text string, err error) {
	dest, err := tokenOf("destination", outDestToken, ins.dest)
	if err != nil {
		return
	}

	text = fmt.Sprintf("out %v, %d", dest, ins.BitCount())
	return
}

// blockToken renders the PUSH/PULL blocking flag.
func blockToken(block bool) string {
	if block {
		return "block"
	}
	return "noblock"
}

func (ins Push) assembly(resolver Resolver) (text string, err error) {
	text = "push "
	if ins.ifFull {
		text += "iffull "
	}
	text += blockToken(ins.block)
	return
}

func (ins Pull) assembly(resolver Resolver) (text string, err error) {
	text = "pull "
	if ins.ifEmpty {
		text += "ifempty "
	}
	text += blockToken(ins.block)
	return
}

func (ins Mov) assembly(resolver Resolver) (text string, err error) {
	dest, err := tokenOf("destination", movDestToken, ins.dest)
	if err != nil {
		return
	}
	op, err := tokenOf("operation", movOpToken, ins.op)
	if err != nil {
		return
	}
	source, err := tokenOf("source", movSourceToken, ins.source)
	if err != nil {
		return
	}

	if ins.op == MOV_OP_NONE {
		text = fmt.Sprintf("mov %v, %v", dest, source)
	} else {
		text = fmt.Sprintf("mov %v, %v %v", dest, op, source)
	}
	return
}

func (ins Irq) assembly(resolver Resolver) (text string, err error) {
	op, err := tokenOf("operation", irqOpToken, ins.op)
	if err != nil {
		return
	}

	text = fmt.Sprintf("irq %v %v", op, irqIndexText(ins.index))
	return
}

func (ins Set) assembly(resolver Resolver) (text string, err error) {
	dest, err := tokenOf("destination", setDestToken, ins.dest)
	if err != nil {
		return
	}

	text = fmt.Sprintf("set %v, %d", dest, ins.data)
	return
}
