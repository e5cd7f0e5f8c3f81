/*
Package nft implements a registry of uniquely identified, indivisible
tokens with single-slot transfer approvals.

Every token has exactly one owner. The owner can transfer it, or grant
one delegate the right to transfer it on their behalf. Granting a new
approval overwrites the previous one, and a completed transfer clears
it, so a past delegate can never move a token for its new owner.

Minting allocates a dense range of ids from a persistent sequence and
credits the recipient. Depending on genesis configuration minting is
either open to everyone or restricted to the registry admin.

Each successful mutation emits exactly one event through the
DeliverResult tags. Failed operations leave no trace in the state and
emit nothing.
*/
package nft
