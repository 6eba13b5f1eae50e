// Package report encodes and decodes prime report artifacts.
//
// The artifact format is one decimal integer per line, each line terminated
// by '\n', with no header and no trailing blank line. An empty sequence is an
// empty artifact. Encoding is deterministic, so writing the same sequence
// twice yields identical bytes.
package report
