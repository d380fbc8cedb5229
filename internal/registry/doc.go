// Package registry holds the two lookup tables of a generator run: the
// declared choice lists and the generation requests that reference them.
//
// The Registry is populated from parsed declarations and then validated to
// ensure that every slot of every request names a declared list, preventing
// the enumerator from ever seeing a dangling reference.
package registry
