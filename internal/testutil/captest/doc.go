// SPDX-License-Identifier: MPL-2.0

// Package captest builds capconfig models for tests.
//
// It is separate from testutil so that packages imported by capconfig can
// still use testutil.
//
// # Usage
//
//	cfg := captest.NewBuild(
//		captest.WithToolkit("/opt/jc305u3"),
//		captest.WithCap("out/wallet.cap", captest.WithApplet("com.example.Wallet")),
//	)
package captest
