// SPDX-License-Identifier: MPL-2.0

// Package capconfig holds the declarative build model for smart-card
// application packages (caps) and the validator that checks it.
//
// The model is populated incrementally, either directly through the append
// operations (AddCap, AddApplet, AddLocalImport, AddInstallArg) or from a
// jcbuild.cue / jcbuild.toml build file via Load. Nothing is checked while
// the model is being built. A single call to Validate then walks the model in
// four fixed stages:
//
//  1. toolkit resolution (root path, per-cap paths, JC_HOME)
//  2. output presence
//  3. applet class names
//  4. local import fields
//
// Each stage scans every cap before the next stage begins, and the first
// violation aborts validation with a *ConfigError. As a side effect, the
// toolkit resolution stage rewrites toolkit paths to their absolute form.
//
// Filesystem and environment access go through the Filesystem and
// Environment interfaces so callers and tests can substitute their own.
package capconfig
