// Package glyphnote resolves short typed notations to symbols.
//
// A notation is a name followed by optional ':'-separated modifiers:
//
//	glyphnote.Get("pi")                // 'π'
//	glyphnote.Get("arrow")             // '→'
//	glyphnote.Get("arrow:l")           // '←'
//	glyphnote.Get("integral:ccw:cont") // '∳'
//	glyphnote.Get("face:grin")         // '😀'
//
// Every table entry with the requested name is a candidate. The winner is the
// candidate that matches the most requested modifiers; ties go to the one
// with fewer modifiers, then to the one using more default modifiers ("r" by
// default), then to whichever comes first in the table. Modifiers match as
// whole tokens, byte for byte; there is no fuzzy matching.
//
// Get and friends use the builtin table. Open builds a Service from
// configuration instead, optionally backed by a table file that is reloaded
// when it changes.
package glyphnote
