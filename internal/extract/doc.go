// Package extract pulls plain text out of uploaded documents and combines it
// with pasted text into a single blob for flashcard generation.
package extract
