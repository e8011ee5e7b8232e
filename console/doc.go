// Package console provides a Bubble Tea single-line command console backed by
// the buffer package.
//
// Every key that edits the line maps to exactly one buffer mutation, so each
// keystroke is one undo step. Submitting a line moves it to the scrollback and
// starts a fresh history: undo never reaches back into submitted input.
package console
