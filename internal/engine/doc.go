// Package engine runs the generator pipeline: it parses the declaration
// stream, validates the registry, re-emits the referenced choice lists,
// enumerates and filters the tuples of every request, renders the
// comparison listing and hands each surviving tuple to the emitter.
//
// A run is a single synchronous pass. The first configuration error stops
// it; output already written to the stream is not rolled back.
package engine
