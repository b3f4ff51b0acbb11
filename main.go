package main

import (
	"wad-info/cli"
)

func main() {
	cli.Start()
}
