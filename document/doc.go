// Package document implements rune-accurate offset arithmetic over plain
// text: line boundaries, splicing, and offset/position conversion.
//
// Offsets are 0-based rune offsets into the whole document. A rune offset
// equal to the rune length of the document addresses the end-of-buffer
// position and is valid everywhere an offset is accepted.
package document
