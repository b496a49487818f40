// Package export renders flashcard sets into downloadable documents: a
// paginated landscape PDF and a PPTX slide deck. Both renderers are pure
// functions of the set and the layout constants; given the same inputs they
// produce the same page and slide sequence (question then answer, in card
// order, 2N pages/slides for N cards).
package export
