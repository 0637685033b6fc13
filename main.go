package main

import "github.com/zalepa/macroar/cmd"

func main() {
	cmd.Execute()
}
