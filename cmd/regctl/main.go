package main

import "github.com/soomtochukwu/XLMate/internal/cli"

func main() {
	cli.Execute()
}
