/*
Package logger provides the logging entry point of the callback table:
severity-tagged, categorized, human-readable line output on behalf of a
running component.

Console writes one line per call in the fixed layout

	[<status-label>][<category>][<instance-name>]: <message>

to the configured output stream. The status label may carry a terminal
color annotation for readability; the canonical label text consumed by
automated log parsers is never altered. Noop discards everything.

Log has no error return: the external standard's logger contract is void,
so failures to render or write are swallowed.
*/
package logger
