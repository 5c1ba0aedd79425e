package main

import "github.com/mouse-blink/covall/cmd"

func main() {
	cmd.Execute()
}
