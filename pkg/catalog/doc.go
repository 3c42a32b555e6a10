/*
Package catalog loads message catalogs for code generation.

A catalog names a set of colorized messages. Each message has a Go source
text, the quoted literal plus optional arguments that markup.Expand accepts,
and optional function parameters the arguments may refer to.

TOML:

	package = "messages"

	[[message]]
	name = "ErrorAt"
	doc = "ErrorAt reports a position"
	source = '"[b|red]error[:] at [[%d:%d]]", line, col'
	params = ["line int", "col int"]

YAML:

	package: messages
	messages:
	  - name: Hello
	    source: '"[bold|cyan]Hello world[magenta]!"'

XML:

	<catalog package="messages">
	  <message name="ErrorAt" doc="ErrorAt reports a position">
	    <source>"[b|red]error[:] at [[%d:%d]]", line, col</source>
	    <param>line int</param>
	    <param>col int</param>
	  </message>
	</catalog>
*/
package catalog
