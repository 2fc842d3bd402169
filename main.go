package main

import "github.com/lazharichir/baccarat/cli"

func main() {
	cli.Execute()
}
