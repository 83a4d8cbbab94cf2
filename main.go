package main

import "github.com/mwhitford/fretwork/cmd"

func main() {
	cmd.Execute()
}
