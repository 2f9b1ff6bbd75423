// Package cli implements the interactive healthmate client: a small REPL
// over the session store and the backend API.
//
// Commands run strictly one at a time: a line is read, the command runs to
// completion, only then is the next line read. That serialization is what
// keeps session mutations from ever interleaving.
//
// Interactive input goes through swappable seams (getSimpleText, getPassword,
// printlnFn) so the flows can be unit-tested without a terminal.
package cli
