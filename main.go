package main

import "github.com/docdeck/docdeck/cmd"

func main() {
	cmd.Execute()
}
