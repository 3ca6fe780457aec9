// Encode a message as a systematic Reed-Solomon codeword and print it.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	rsencoder "github.com/Jarrod-Bennett/rs-encoder/src"
)

// The stock demonstration message, 10 symbols of 4 bits each.
var defaultMessage = []byte{0x2, 0x5, 0x6, 0x6, 0x0, 0xB, 0xF, 0xC, 0x1, 0xB}

func main() {
	var parityCount = pflag.IntP("parity", "t", 4, "Number of parity symbols to append.")
	var symbolSize = pflag.IntP("symbol-size", "m", 4, "Symbol size in bits.")
	pflag.Parse()

	var msg = defaultMessage
	if pflag.NArg() > 0 {
		var parsed, err = parseMessage(pflag.Args())
		if err != nil {
			log.Fatal("Message symbols must be hex values", "err", err)
		}
		msg = parsed
	}

	var parity = make([]byte, *parityCount)
	if err := rsencoder.Encode(msg, len(msg), *parityCount, *symbolSize, parity); err != nil {
		log.Fatal("Could not encode message", "err", err)
	}

	fmt.Print(formatCodeword(msg, parity))
}

func parseMessage(args []string) ([]byte, error) {
	var msg = make([]byte, 0, len(args))
	for _, arg := range args {
		var v, err = strconv.ParseUint(arg, 16, 8)
		if err != nil {
			return nil, err
		}
		msg = append(msg, byte(v))
	}
	return msg, nil
}

// formatCodeword renders the systematic codeword, message symbols followed
// by parity symbols, as space separated lowercase hex.
func formatCodeword(msg, parity []byte) string {
	var sb strings.Builder
	for i, s := range append(append([]byte(nil), msg...), parity...) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%x", s)
	}
	sb.WriteByte('\n')
	return sb.String()
}
