// Package rules prunes combination tuples that describe nonsensical or
// duplicate solver configurations.
//
// Tuples are not inspected by position. A Roles value binds the four
// semantic roles (redundancy, conversion, strategy A, strategy B) to choice
// list names, the bound labels are collected into an Assignment, and each
// rule is a pure predicate over that Assignment:
//
//	R1 reciprocity      the exclusive strategy marker is only legal when both
//	                    strategies agree, or when strategy A is
//	                    priority-style and strategy B is not exclusive
//	R2 mode dependency  an exclusive strategy requires the redundant update
//	                    mode and the skipping conversion
//	R3 baseline pruning without the redundant update mode, conversion and
//	                    both strategies must sit at their baselines
package rules
