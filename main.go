package main

import "github.com/xvierd/fsh/cmd"

func main() {
	cmd.Execute()
}
