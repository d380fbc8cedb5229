// Package integration_tests runs the whole generator, from declarations file
// to generated sources, through the test harness.
package integration_tests
