// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail the test on
// error instead of returning it.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv, SetHomeDir),
// files and directories (MustMkdirAll, MustWriteFile) and on-disk fixtures
// (NewToolkitDir, WriteBuildFile).
package testutil
