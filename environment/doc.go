/*
Package environment hosts WebAssembly components and hands them the
callback table.

An Environment wraps a wazero runtime and registers the host module
"cosim_env" with two functions a guest can import: logger, which receives a
packed pointer/length pair referencing a wire-encoded log message in guest
memory, and step_finished, which receives a raw status ordinal. Both are
routed to the environment's Table with the handle the host associated with
the calling component at Load time.

The memory callbacks are not bridged: a WebAssembly guest owns its linear
memory, so AllocateMemory and FreeMemory remain in-process concerns of
native hosts.
*/
package environment
