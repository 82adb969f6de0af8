// SPDX-License-Identifier: MPL-2.0

// Package platform resolves per-OS locations such as the user configuration
// directory.
package platform
