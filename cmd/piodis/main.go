// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ezrec/piocodec/listing"
	"github.com/ezrec/piocodec/pio"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true)
	mnemonicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	operandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	commentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func render(style lipgloss.Style) func(string) string {
	return func(text string) string {
		return style.Render(text)
	}
}

// colorFormat decorates a listing for a terminal.
func colorFormat(format listing.Format) listing.Format {
	format.Label = render(labelStyle)
	format.Mnemonic = render(mnemonicStyle)
	format.Operands = render(operandStyle)
	format.Comment = render(commentStyle)
	return format
}

func main() {
	var input string
	var hex bool
	var fixed string
	var expr string
	var auto bool
	var addresses bool
	var color string
	var verbose bool

	flag.StringVar(&input, "i", "-", "Program image to disassemble")
	flag.BoolVar(&hex, "x", false, "Input is hex words, not a little-endian binary")
	flag.StringVar(&fixed, "L", "", "Render every jump target as this label")
	flag.StringVar(&expr, "l", "", "Starlark expression over addr naming jump targets")
	flag.BoolVar(&auto, "a", false, "Name jump targets L<addr>")
	flag.BoolVar(&addresses, "n", false, "Show address and word of each instruction")
	flag.StringVar(&color, "color", "auto", "Color output: auto, always or never")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	defer logger.Sync()
	listing.SetLogger(logger)

	var inf io.Reader = os.Stdin
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			logger.Fatal("open", zap.String("input", input), zap.Error(err))
		}
		defer file.Close()
		inf = file
	}

	var words []uint16
	if hex {
		words, err = listing.ParseHex(inf)
	} else {
		words, err = listing.Read(inf)
	}
	if err != nil {
		logger.Fatal("read", zap.String("input", input), zap.Error(err))
	}

	dis := &listing.Disassembler{}
	switch {
	case len(expr) != 0:
		dis.Name, err = listing.ExprResolver(expr)
		if err != nil {
			logger.Fatal("label expression", zap.Error(err))
		}
	case auto:
		dis.Name = listing.AutoLabel
	}
	if len(fixed) != 0 {
		dis.Resolver = pio.Label(fixed)
	}

	lst := dis.Disassemble(words)

	format := listing.Format{Addresses: addresses}
	switch color {
	case "always":
		format = colorFormat(format)
	case "auto":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = colorFormat(format)
		}
	case "never":
	default:
		logger.Fatal("unknown color mode", zap.String("color", color))
	}

	err = lst.Write(os.Stdout, format)
	if err != nil {
		logger.Fatal("write", zap.Error(err))
	}

	if err = lst.Err(); err != nil {
		logger.Error("disassembly incomplete", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
