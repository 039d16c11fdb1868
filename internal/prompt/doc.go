// Package prompt holds the parameterized text templates email drafts are
// generated from, and renders them against named variables into final
// prompt strings.
//
// Template construction and variable rendering are two separate phases:
// BuildCustomTemplate assembles a template body from the caller's options
// (tone guidance, postscript blocks) at build time, and Render substitutes
// variables into an assembled body at render time. Placeholders are
// literal {name} markers replaced verbatim; there is no escaping and no
// evaluation of embedded content.
package prompt
