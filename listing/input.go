package listing

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/piocodec/pio"
)

// Read reads a binary program image of little-endian instruction words.
func Read(input io.Reader) (words []uint16, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	if len(data)%pio.WordSize != 0 {
		err = &ErrInput{Offset: len(data) - 1, Err: pio.ErrBufferTooSmall}
		return
	}

	words = make([]uint16, 0, len(data)/pio.WordSize)
	for offset := 0; offset < len(data); offset += pio.WordSize {
		words = append(words, binary.LittleEndian.Uint16(data[offset:]))
	}

	return
}

// ParseHex reads instruction words written as hexadecimal, as produced by
// `pioasm -o hex`. Words are separated by whitespace; text after ';' or '#'
// is a comment.
func ParseHex(input io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1

		line := scanner.Text()
		if n := strings.IndexAny(line, ";#"); n >= 0 {
			line = line[:n]
		}

		for _, field := range strings.Fields(line) {
			digits := strings.TrimPrefix(strings.ToLower(field), "0x")
			var value uint64
			value, err = strconv.ParseUint(digits, 16, 16)
			if err != nil || len(digits) == 0 {
				err = &ErrInput{LineNo: lineno, Err: ErrHexWord(field)}
				return
			}
			words = append(words, uint16(value))
		}
	}

	err = scanner.Err()
	return
}
