// Package workout folds sensor measurements into workout summaries.
//
// Summaries are pure values: the same measurements in the same order always
// produce the same averages, whether they are summarized at once or absorbed
// one at a time through an Accumulator.
package workout
