package main

import "github.com/bebop-dex/go-sdk/cli"

func main() {
	cli.Execute()
}
