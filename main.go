package main

import "github.com/projtime/projtime/cmd"

func main() {
	cmd.Execute()
}
