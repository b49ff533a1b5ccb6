// Package terminal implements the portfolio's simulated command line: a
// fixed command table, a pure resolver, and a per-visitor session holding
// the transcript and the recall buffer.
//
// Sessions never touch a UI directly. Front-ends feed them events and carry
// out the returned effects (scroll, focus, deferred focus).
package terminal
