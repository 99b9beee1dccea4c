// Copyright © 2025 Oneprompt

package main

import (
	"github.com/oneprompt/promptmon/cmd/promptmon/cmd"
)

func main() {
	cmd.Execute()
}
