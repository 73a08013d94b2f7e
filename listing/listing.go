// Package listing disassembles PIO program images into pioasm listings.
package listing

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ezrec/piocodec/pio"
)

// Line is one disassembled instruction word.
type Line struct {
	Addr        int
	Word        uint16
	Instruction pio.Instruction // nil if Err is set
	Text        string
	Err         error
}

// Listing is a disassembled program.
type Listing struct {
	Labels map[uint8]string // Address labels, including named jump targets.
	Lines  []Line
}

// AutoLabel names an address L<addr>.
func AutoLabel(addr uint8) string {
	return fmt.Sprintf("L%d", addr)
}

// Disassembler converts instruction words into a Listing.
type Disassembler struct {
	Labels map[uint8]string // Known address labels.

	// Name, if set, names jump targets that are not in Labels.
	Name func(addr uint8) string

	// Resolver, if set, renders every jump target instead of the labels.
	Resolver pio.Resolver
}

// Disassemble decodes words, starting at address 0. A word that does not
// decode keeps its error on its Line and disassembly continues.
func (dis *Disassembler) Disassemble(words []uint16) (lst *Listing) {
	log := Logger()

	lst = &Listing{
		Labels: maps.Clone(dis.Labels),
		Lines:  make([]Line, 0, len(words)),
	}
	if lst.Labels == nil {
		lst.Labels = map[uint8]string{}
	}

	for addr, word := range words {
		line := Line{Addr: addr, Word: word}
		line.Instruction, line.Err = pio.Decode(word)
		if line.Err != nil {
			log.Debug("undecodable word",
				zap.Int("addr", addr),
				zap.Uint16("word", word),
				zap.Error(line.Err))
		}
		lst.Lines = append(lst.Lines, line)
	}

	if dis.Name != nil {
		for target := range lst.Targets() {
			if _, ok := lst.Labels[target]; !ok {
				lst.Labels[target] = dis.Name(target)
			}
		}
	}

	resolver := dis.Resolver
	if resolver == nil {
		resolver = pio.LabelMap(lst.Labels)
	}

	for n := range lst.Lines {
		line := &lst.Lines[n]
		if line.Err != nil {
			continue
		}
		line.Text, line.Err = pio.Assembly(line.Instruction, resolver)
	}

	log.Debug("disassembled",
		zap.Int("words", len(words)),
		zap.Int("labels", len(lst.Labels)))

	return
}

// Instructions iterates over the decoded instructions by address.
func (lst *Listing) Instructions() iter.Seq2[int, pio.Instruction] {
	return func(yield func(addr int, ins pio.Instruction) bool) {
		for _, line := range lst.Lines {
			if line.Err != nil {
				continue
			}
			if !yield(line.Addr, line.Instruction) {
				return
			}
		}
	}
}

// Targets iterates over the distinct jump targets in address order.
func (lst *Listing) Targets() iter.Seq[uint8] {
	var targets []uint8
	for _, ins := range lst.Instructions() {
		if jmp, ok := ins.(pio.Jmp); ok {
			targets = append(targets, jmp.Addr())
		}
	}
	slices.Sort(targets)

	return slices.Values(slices.Compact(targets))
}

// Err returns the errors of all lines that failed to disassemble.
func (lst *Listing) Err() error {
	var errs []error
	for _, line := range lst.Lines {
		if line.Err != nil {
			errs = append(errs, line.Err)
		}
	}
	return errors.Join(errs...)
}

// Format controls how a Listing is written.
type Format struct {
	Addresses bool // Append the address and word as a comment.

	// Optional decorations for each part of a line.
	Label    func(string) string
	Mnemonic func(string) string
	Operands func(string) string
	Comment  func(string) string
}

func decorate(fn func(string) string, text string) string {
	if fn == nil {
		return text
	}
	return fn(text)
}

// Write writes the listing as pioasm text, one instruction per line.
// Undecodable words are written as .word directives.
func (lst *Listing) Write(w io.Writer, format Format) (err error) {
	for _, line := range lst.Lines {
		if line.Addr < 256 {
			if label, ok := lst.Labels[uint8(line.Addr)]; ok {
				_, err = fmt.Fprintf(w, "%v\n", decorate(format.Label, label+":"))
				if err != nil {
					return
				}
			}
		}

		var text, comment string
		if line.Err != nil {
			text = fmt.Sprintf(".word 0x%04x", line.Word)
			comment = line.Err.Error()
		} else {
			text = line.Text
			if format.Addresses {
				comment = fmt.Sprintf("%02d: %04x", line.Addr, line.Word)
			}
		}

		mnemonic, operands, _ := strings.Cut(text, " ")
		out := "\t" + decorate(format.Mnemonic, mnemonic)
		if len(operands) > 0 {
			out += " " + decorate(format.Operands, operands)
		}
		if len(comment) > 0 {
			out += " " + decorate(format.Comment, "; "+comment)
		}

		_, err = fmt.Fprintln(w, out)
		if err != nil {
			return
		}
	}

	return
}

// String returns the undecorated listing.
func (lst *Listing) String() string {
	var sb strings.Builder
	_ = lst.Write(&sb, Format{})
	return sb.String()
}
