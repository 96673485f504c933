/*
Package step provides the step-completion entry point of the callback
table: the notification a component uses to signal that an asynchronous
computation step has finished.

The standard behavior is a deliberate no-op; Noop implements it. Func and
Recorder exist for environments that want to observe the extension point.
*/
package step
