package main

import (
	"github.com/focusnice/focusnice/cmd/focusnice/commands"
)

func main() {
	commands.Execute()
}
