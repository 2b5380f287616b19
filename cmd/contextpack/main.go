package main

import "github.com/mvp-joe/contextpack/internal/cli"

func main() {
	cli.Execute()
}
