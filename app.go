package main

import "github.com/czkit/czkit/cmd"

func main() {
	cmd.Run()
}
