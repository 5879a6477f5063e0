// SPDX-License-Identifier: EPL-2.0

// Package entropy implements the lossless coders used for 3PM payloads.
//
// The main coder is a binary arithmetic coder in the style of fpaq0. It
// codes each byte as nine binary decisions and asks a Model for the
// probability of each one:
//
//   - NaiveContext conditions on the bits of the current byte.
//   - RegionContext additionally splits the input into frequency
//     regions, treating it as a run of 16 bit spectral samples.
//
// Encode and Decode are symmetric as long as both sides start from a
// freshly built model with the same parameters:
//
//	packed := entropy.Encode(data, entropy.NewNaiveContext())
//	data = entropy.Decode(packed, entropy.NewNaiveContext())
//
// When the decoded size is known, DecodeN enforces it. A payload read
// with the wrong model desynchronises and would otherwise produce an
// arbitrary amount of output before its input runs out.
//
// SymbolEncode and SymbolDecode provide an adaptive multi-symbol coder as
// an alternative. Codec wraps either coder behind one interface.
package entropy
