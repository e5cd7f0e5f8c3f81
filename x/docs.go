/*
Package x contains the standard extensions of the registry framework.

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application.

The x package itself holds the interfaces and helpers shared by
all extensions, most importantly the Authenticator abstraction
used to decouple handlers from any concrete signature scheme.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `nft.MintMsg` in place of `nft.NftMintMsg`.
*/
package x
