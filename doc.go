/*
Package codedchars produces the control functions of ECMA-48 (Control
Functions for Coded Character Sets) as byte-exact escape and control
sequences for ANSI-compatible terminals.

The package only encodes: every value here renders to the sequence a
terminal interprets, either captured as a string for embedding in larger
output, or written directly with Execute. Incoming sequences are not
parsed and terminal capabilities are not detected.

C0 and C1 controls, ESCape sequences, and CSI control sequences are all
identified by the Escape type; parameterized functions are built into Seq
values through the typed constructors (SetPosition, EraseDisplay, ...) and
graphic renditions through the fluent Rendition accumulator.
*/
package codedchars
