// Package formatter implements the template engine that turns a log
// call into output text.
//
// A Template is a string containing {key} placeholders, where a key is
// one or more ASCII letters, digits, or underscores. Parsing derives
// the template's key set — the distinct placeholder names in
// first-occurrence order — which the logger uses to decide which keys
// still need sentinel values before rendering. Braces that do not
// form a well-formed placeholder are left in the output verbatim.
//
// Render substitutes placeholders from a fully assembled string
// context and fails loudly if any template key is absent from it. The
// logger guarantees this cannot happen by inserting a sentinel for
// every unsupplied key, so a Render error indicates a bug rather than
// bad user input.
package formatter
