package main

import (
	"github.com/foamtab/foamtab/cmd/foamtab/commands"
)

func main() {
	commands.Execute()
}
