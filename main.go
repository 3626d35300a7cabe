package main

import "github.com/Clemens865/microlabs/internal/commands"

func main() {
	commands.Execute()
}
