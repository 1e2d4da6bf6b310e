// Package model provides the intermediate representation (IR) for normalized
// slide decks.
//
// This package defines the data structures shared by every stage of the
// beautify pipeline: a Deck of ordered Pages, each holding ordered Shapes
// with EMU geometry and trimmed text content. The normalize package builds
// the tree once per parse; the classifier, template selector, and
// replacement generator treat it as read-only input.
//
// All positions and sizes are expressed in EMUs (English Metric Units, the
// OOXML linear unit) and are never negative.
package model
