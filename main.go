// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/GZGavinZhao/cargo2anda/cmd"
)

func main() {
	cmd.Execute()
}
