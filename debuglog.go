// Package debuglog is an opt-in tracing facility for development builds.
// It prints nested, indented output that can be filtered by a substring
// of the call-site location, and is compiled out entirely unless the
// "debug" build tag is set.
//
// Output goes to stderr by default, or to the host console API on
// js/wasm targets. The filter is seeded from the DEBUG environment
// variable at startup: unset or empty disables all output, "*" matches
// every call site, anything else enables call sites whose file:line tag
// contains it as a substring.
//
// Groups open an indented block and close it when their closer runs,
// which pairs naturally with defer so the block unwinds on any exit
// path:
//
//	defer debuglog.Group("parse %s", path)()
//	debuglog.Logf("tokens: %d", n)
//	debuglog.Dump("header", hdr)
package debuglog

// Wildcard is the filter value that matches every call site
const Wildcard = "*"
