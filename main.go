package main

import "github.com/chriserin/ftlint/cmd"

func main() {
	cmd.Execute()
}
