package main

import "github.com/aalvaropc/ryujin/internal/cli"

func main() {
	cli.Execute()
}
