// huecheck - A WCAG colour contrast checker
//
// huecheck measures the contrast between text and background colours,
// reports WCAG AA/AAA compliance and suggests the nearest compliant colours.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/huecheck/internal/cli"

func main() {
	cli.Execute()
}
