/*
Package errors implements custom error interfaces for the registry.

The package is based on root error instances that are registered
together with a unique code. All errors created during runtime should
wrap one of the root errors. This allows matching with the Is method
regardless of how many times an error was wrapped, and reporting a
stable code to the hosting environment while keeping the full
description (and stack trace) for the operator.

Rejected preconditions are normal coded errors: they carry no state
change and are reported back to the caller. ErrHuman is reserved for
code paths that must be unreachable if the framework is used as
intended; it marks a defect, not a recoverable user error.
*/
package errors
