package main

import "github.com/adithyasudev/entry-voucher-forge/internal/cli"

func main() {
	cli.Execute()
}
