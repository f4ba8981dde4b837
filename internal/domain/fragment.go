package domain

// Bit layout of one input byte and the quality character mapping.
// The split point and the offset are a fixed pair; tests pin both.
const (
	// BaseBits is the width of the leading base field.
	BaseBits = 2

	// QualityBits is the width of the trailing quality field.
	QualityBits = 6

	// QualityMask selects the quality field.
	QualityMask = 1<<QualityBits - 1

	// QualityOffset is added to the quality field to reach printable ASCII.
	QualityOffset = 33

	// MaxQuality is the highest quality character the mapping can produce.
	MaxQuality = QualityMask + QualityOffset

	// NormalizedWidth is the number of binary digits in a normalized byte.
	NormalizedWidth = BaseBits + QualityBits
)

// Bases is the closed base alphabet indexed by the 2-bit base code.
const Bases = "ACGT"

// DecodedByte is one input byte split into its base symbol and quality character.
type DecodedByte struct {
	// Base is one of A, C, G, T.
	Base byte

	// Quality is a printable character in [QualityOffset, MaxQuality].
	Quality byte
}

// Fragment is a fixed-length group of decoded bytes.
// A fragment is the atomic unit rendered as one read record.
type Fragment struct {
	// Index is the 1-based position of the fragment in its run.
	Index int

	// Bytes holds the decoded bytes in input order.
	Bytes []DecodedByte
}

// Len returns the number of decoded bytes in the fragment.
func (f Fragment) Len() int {
	return len(f.Bytes)
}

// Sequence returns the base characters concatenated in fragment order.
func (f Fragment) Sequence() string {
	b := make([]byte, len(f.Bytes))
	for i, d := range f.Bytes {
		b[i] = d.Base
	}
	return string(b)
}

// Qualities returns the quality characters concatenated in fragment order.
func (f Fragment) Qualities() string {
	b := make([]byte, len(f.Bytes))
	for i, d := range f.Bytes {
		b[i] = d.Quality
	}
	return string(b)
}

// Run is the ordered sequence of fragments produced from one input.
type Run struct {
	FragmentLength int
	Fragments      []Fragment
}

// Decoded returns every decoded byte of the run in input order.
func (r Run) Decoded() []DecodedByte {
	out := make([]DecodedByte, 0, len(r.Fragments)*r.FragmentLength)
	for _, f := range r.Fragments {
		out = append(out, f.Bytes...)
	}
	return out
}
