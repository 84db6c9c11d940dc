// Package abi holds the low-level conventions shared by both sides of the
// mod boundary: the packed pointer/length encoding used by every boundary
// call, and defensive decoding of text the client hands over.
package abi

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidText reports text from the client that could not be decoded:
// a nil buffer or bytes that are not valid UTF-8.
var ErrInvalidText = errors.New("abi: invalid text from client")

// PackPtrLen packs a pointer and length into a single uint64, pointer in
// the high 32 bits and length in the low 32 bits. Panics on a null pointer
// with a non-zero length, which indicates corrupted state.
func PackPtrLen(ptr, length uint32) uint64 {
	if ptr == 0 && length > 0 {
		panic(fmt.Sprintf("abi: invalid pack - null pointer with non-zero length (%d)", length))
	}
	return (uint64(ptr) << 32) | uint64(length)
}

// UnpackPtrLen splits a packed uint64 back into pointer and length. Panics
// on a null pointer with a non-zero length.
func UnpackPtrLen(packed uint64) (ptr, length uint32) {
	ptr = uint32(packed >> 32)
	length = uint32(packed)
	if ptr == 0 && length > 0 {
		panic(fmt.Sprintf("abi: invalid unpack - null pointer with non-zero length (%d)", length))
	}
	return ptr, length
}

// DecodeText converts raw bytes from the client into an owned string. The
// client stores text C-style, so anything after the first NUL is dropped.
// Returns ErrInvalidText for a nil buffer or invalid UTF-8; it never panics
// on malformed client input.
func DecodeText(raw []byte) (string, error) {
	if raw == nil {
		return "", ErrInvalidText
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidText
	}
	return string(raw), nil
}
