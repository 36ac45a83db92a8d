package main

import "github.com/ArnaudCalmettes/boardcrop/cmd"

func main() {
	cmd.Execute()
}
