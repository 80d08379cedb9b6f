// Package base64 implements the base64 binary-to-text codec with two alphabets:
// the standard one (`+`, `/`, padded with `=`) and the URL-safe one (`-`, `_`,
// padded with `.`).
//
// Encoding always pads the output to a multiple of four characters. Decoding
// accepts characters and padding from both alphabets at the same time, so the
// caller never needs to declare which variant produced the text.
//
// EncodePem and EncodeMime additionally wrap the output with line feeds every
// 64 and 76 characters respectively. Text produced by them is decoded by
// calling Decode with stripLineBreaks set.
//
// All functions are pure and safe for concurrent use.
//
// https://www.rfc-editor.org/rfc/rfc4648
package base64
