package main

import (
	"CDL/cmd"
)

func main() {
	cmd.Execute()
}
