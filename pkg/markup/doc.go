/*
Package markup turns inline color markup into ANSI escape sequences.

Modes are written between square brackets and separated by pipes. They apply
to all text that follows, and everything is reset at the end of the string:

	[bold|cyan]Hello world[magenta]!

produces

	ESC[1;36mHello world ESC[35m! ESC[0m

# Modes

Styles: bold (b), dim (faint), italic (i), underline (u), inverse (!), hidden,
strikethrough (s).

Colors: black, red, green, yellow, blue, magenta, cyan, white, default (def).
Prefix a color with a question mark to set the background: ?red, ?def.

Custom colors: a 256-color id of 1 to 3 digits (214, ?187) or a truecolor
hex value (#babaf1, ?#babaf1).

Controls: visible (vis), invisible (invis), blink, noblink. They are emitted
as their own sequences instead of being merged with neighbouring codes.

A leading colon resets everything before applying the remaining modes:

	[b|red]error[:] at line 3
	[b|red]error[:b]: message

# Escaping

Brackets are doubled to be printed literally, like braces in format
strings: [[ prints [ and ]] prints ]. Runs are consumed in pairs.

# Bindings

Colorize, Strip and the Sprintf/Print family work on text at runtime.
Expand works on Go source text, a quoted literal followed by optional
arguments, and is what the code generator uses:

	exp, err := markup.Expand(`"[b]{}[:] done", name`)
	exp.GoExpr() // fmt.Sprintf("\x1b[1m{}\x1b[0m done\x1b[0m", name)

All grammar failures are *errors.FancyError values carrying one of the
grammar error codes and the rune index of the offending character.
*/
package markup
