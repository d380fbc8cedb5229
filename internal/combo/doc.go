// Package combo enumerates the combination tuples of a generation request.
//
// Fixed slots contribute each option of their list; variadic slots
// contribute each element of the power set of their list. The result is the
// cross product in slot order with the last slot varying fastest, so
// enumerating the same inputs twice yields identical sequences.
package combo
