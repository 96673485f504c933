/*
Package guest lets a component built as a WebAssembly guest reach the
environment's callback table through waPC host calls.

The client mirrors the table's void contract: Log and StepFinished return
nothing, and failures to serialize or reach the environment are dropped.
Variadic log arguments cross the boundary as the typed list defined in the
wire package; the environment performs the placeholder substitution.

Tests can inject custom host behaviour with Config.HostCall to exercise the
client without a real environment.
*/
package guest
