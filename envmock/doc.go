/*
Package envmock provides a pretend hosting environment for waPC calls.

It exists for SDK development and tests that want to validate exactly what a
component sends toward the environment's callback table without a real
environment running.

Why use envmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator to assert wire contents.
  - Observe void operations: Calls counts invocations, since the callback contract returns nothing to assert on.
  - Script responses: return custom bytes or simulate failures.

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and
    runs PayloadValidator when provided. If everything is in order, Response
    (when set) provides the return bytes; otherwise it returns nil.
  - Leave fields blank for a wildcard; only set values are enforced.
*/
package envmock
