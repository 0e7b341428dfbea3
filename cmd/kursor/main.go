package main

import "github.com/bnema/kursor/internal/cli/cmd"

func main() {
	cmd.Execute()
}
