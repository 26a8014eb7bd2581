// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "overlock-cli/cmd/overlock"
)

func main() {
	cmd.Execute()
}
