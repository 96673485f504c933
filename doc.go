/*
Package callbacks provides the environment-supplied callback table a
co-simulation host hands to a loaded component.

The package exposes New to assemble a Table from the four standard entry
points (logger, memory allocation, memory release, step-completion) and a
RuntimeConfig shared by transport adapters. Components call the table's
functions directly; the table holds no state of its own.
*/
package callbacks
