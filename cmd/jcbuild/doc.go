// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the jcbuild command line.
//
// Commands are built by NewRootCommand around an App, which carries the
// config provider, the filesystem and environment seen by the validator, and
// the output streams. Tests construct an App with in-memory collaborators.
package cmd
