// SPDX-License-Identifier: MPL-2.0

// Package config loads jcbuild's own settings (log level, toolkit variable,
// default build file, UI preferences) using Viper with CUE as the file format.
//
// Settings live in ~/.config/jcbuild/config.cue ($XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support on macOS, %APPDATA% on Windows). Any key can
// be overridden from the environment with a JCBUILD_ prefix, dots becoming
// underscores: JCBUILD_TOOLKIT_ENV_VAR, JCBUILD_UI_VERBOSE.
//
// These are tool settings only. The build model itself is read from the
// build file by package capconfig.
package config
