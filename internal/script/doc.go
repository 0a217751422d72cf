// Package script parses the structured text produced by the language model
// into typed records: dialogue lines, slides, and video scenes.
//
// All three grammars are line oriented and tolerant: blank lines and
// unrecognized lines are skipped, never treated as errors.
package script
