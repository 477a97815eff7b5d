package main

import "github.com/diogo/procchat/internal/commands"

func main() {
	commands.Execute()
}
