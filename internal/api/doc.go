// Package api contains the HTTP handlers: listing, creating and viewing
// flashcard sets, and exporting a set as a PDF or a PPTX download. Pages are
// rendered from embedded HTML templates; user-facing warnings travel between
// requests as flash messages in a signed session cookie.
package api
