package main

import "github.com/audioforge/roger/internal/commands"

func main() {
	commands.Execute()
}
