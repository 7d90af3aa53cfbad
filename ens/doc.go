// Package ens resolves ENS names to Ethereum addresses and addresses back
// to their primary names against the on-chain registry.
//
// The engine discovers the resolver contract responsible for a name by
// querying the registry and, when the exact name has no resolver entry,
// walking the ENSIP-10 wildcard fallback chain toward its parent domains.
// Discovered resolver handles are cached per resolver contract address for
// the lifetime of the engine. Record retrieval supports EIP-3668 offchain
// lookups with a bounded number of gateway redirects, controlled by the
// caller-chosen resolution mode.
package ens
