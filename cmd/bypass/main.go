package main

import (
	"github.com/NVIDIA/version-bypass/pkg/cli"
)

func main() {
	cli.Execute()
}
