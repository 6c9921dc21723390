package main

import "github.com/kozaktomas/makeup-tryon/cmd"

func main() {
	cmd.Execute()
}
