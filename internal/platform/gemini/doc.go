// Package gemini implements the generation.Generator interface against the
// Gemini generateContent REST endpoint. The API key travels as a query
// parameter; a single call is made per generation with a bounded timeout and
// no retry. Model output is unwrapped from an optional markdown code fence
// before being parsed as JSON.
package gemini
