// SPDX-License-Identifier: MPL-2.0

// Package issue turns build and configuration failures into messages a user
// can act on: an ActionableError carries the failed operation, the file
// involved and suggestions, and the Issue catalog holds longer Markdown
// guidance rendered with glamour by `jcbuild explain`.
package issue
