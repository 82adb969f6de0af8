// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Both jcbuild.cue build files and the jcbuild application config follow the
// same flow: compile the schema, compile the user document and unify it with
// a schema definition, then validate and decode into a Go value.
//
//	//go:embed jcbuild_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[buildFile](schema, data, "#Build",
//	    cueutil.WithFilename("jcbuild.cue"))
//
// Errors carry the file name and a JSON-style path to the offending field,
// e.g. "jcbuild.cue: caps[0].aid: invalid value".
package cueutil
