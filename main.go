// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/jcbuild/jcbuild/cmd/jcbuild"

func main() {
	cmd.Execute()
}
