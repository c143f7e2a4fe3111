// Package token defines the token vocabulary of the piUML language.
//
// piUML is line oriented: every statement occupies one source line and the
// leading indentation encodes containment nesting. The lexer therefore
// produces an Indent token at the start of each non-blank line, a Newline
// token at its end, and regular tokens in between. `#` comments never reach
// the token stream.
//
// Feature lines (`: name: type = default`) carry their payload as opaque
// text in a single Feature token; the parser interprets the payload, since
// attribute types and defaults are free-form and never type-checked.
package token
