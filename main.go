// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/vantagehq/interview-service/cmd"

func main() {
	cmd.Execute()
}
