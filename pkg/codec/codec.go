package codec

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/binfastq/internal/domain"
)

// baseTable maps a 2-bit base code to its symbol.
var baseTable = [4]byte{'A', 'C', 'G', 'T'}

// Normalize returns the 8-digit, zero-padded binary form of b.
func Normalize(b byte) string {
	var buf [domain.NormalizedWidth]byte
	for i := range buf {
		if b&(0x80>>i) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf[:])
}

// NormalizeAll normalizes every byte of data, preserving order.
func NormalizeAll(data []byte) []string {
	out := make([]string, len(data))
	for i, b := range data {
		out[i] = Normalize(b)
	}
	return out
}

// BaseSymbol maps a 2-bit base code to A, C, G or T.
// Codes above 3 cannot come from a 2-bit field and are reported as an
// invariant violation.
func BaseSymbol(code uint8) (byte, error) {
	if int(code) >= len(baseTable) {
		return 0, fmt.Errorf("%w: base code %d outside [0,3]", domain.ErrInvariantViolation, code)
	}
	return baseTable[code], nil
}

// QualitySymbol maps a 6-bit quality score to its printable character.
func QualitySymbol(score uint8) byte {
	return score&domain.QualityMask + domain.QualityOffset
}

// DecodeByte splits b into its base and quality symbols.
func DecodeByte(b byte) domain.DecodedByte {
	return domain.DecodedByte{
		Base:    baseTable[b>>domain.QualityBits],
		Quality: QualitySymbol(b),
	}
}

// DecodeAll decodes every byte of data, preserving order.
func DecodeAll(data []byte) []domain.DecodedByte {
	out := make([]domain.DecodedByte, len(data))
	for i, b := range data {
		out[i] = DecodeByte(b)
	}
	return out
}

// DecodeNormalized decodes an 8-digit binary string produced by Normalize.
func DecodeNormalized(s string) (domain.DecodedByte, error) {
	if len(s) != domain.NormalizedWidth {
		return domain.DecodedByte{}, fmt.Errorf("%w: %q has %d digits, want %d",
			domain.ErrMalformedInput, s, len(s), domain.NormalizedWidth)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return domain.DecodedByte{}, fmt.Errorf("%w: %q is not binary", domain.ErrMalformedInput, s)
		}
	}

	baseCode, err := strconv.ParseUint(s[:domain.BaseBits], 2, 8)
	if err != nil {
		return domain.DecodedByte{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	score, err := strconv.ParseUint(s[domain.BaseBits:], 2, 8)
	if err != nil {
		return domain.DecodedByte{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	base, err := BaseSymbol(uint8(baseCode))
	if err != nil {
		return domain.DecodedByte{}, err
	}
	return domain.DecodedByte{Base: base, Quality: QualitySymbol(uint8(score))}, nil
}
