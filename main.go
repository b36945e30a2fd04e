package main

import "av1an-args/cmd"

func main() {
	cmd.Execute()
}
