/*
Package nftoken defines all common interfaces to tie together the
non-fungible token registry framework, as well as implementations of
some of the simpler components (when interfaces would be too much
overhead).

The registry is one logical state machine: a caller identity plus a
message enter a Handler, which validates against the key-value store,
mutates it if valid, and emits domain events through the DeliverResult
tags. The hosting environment serializes calls; decorators in x/utils
make every call atomic by running it against a cache wrap that is only
written back on success.

We pass context through context.Context between app, middleware, and
handlers. To do so, this package defines some common keys to store info,
such as block height and chain id. Each extension, such as auth, may add
its own keys to enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package nftoken
