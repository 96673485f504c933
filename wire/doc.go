/*
Package wire defines the JSON wire format used to forward callback
invocations across a component/environment boundary.

Variadic printf arguments do not survive a serialized boundary, so a log
message travels as its template plus a list of typed arguments
(Arg{Type, Value}); the receiving side restores the typed values with
Values and performs the placeholder substitution itself. Messages are
encoded with encoding/json on the sending side and parsed with fastjson on
the receiving side, where one environment may ingest lines from many
components.
*/
package wire
