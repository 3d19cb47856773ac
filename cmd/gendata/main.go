package main

import "github.com/aalvaropc/gendata/internal/cli"

func main() {
	cli.Execute()
}
