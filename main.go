package main

import "github.com/embedhq/incpath/cmd"

func main() {
	cmd.Execute()
}
