// Package codec converts raw bytes into base and quality symbols.
//
// Each byte carries two fields: the two most significant bits select a base
// from A, C, G, T and the six least significant bits, offset by 33, give a
// printable quality character.
//
//	d := codec.DecodeByte(0x62) // 0b01_100010
//	// d.Base == 'C', d.Quality == 'C'
//
// Bytes can also be normalized to their 8-digit binary text form and decoded
// from it. That path validates its input and is meant for callers that hold
// normalized strings rather than raw bytes:
//
//	s := codec.Normalize(5)             // "00000101"
//	d, err := codec.DecodeNormalized(s) // {Base: 'A', Quality: '&'}
package codec
