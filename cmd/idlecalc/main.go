package main

import "github.com/govalues/idle/internal/cli"

func main() {
	cli.Execute()
}
