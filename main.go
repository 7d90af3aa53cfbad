package main

import (
	"github.com/ensolve/ensolve/cmd"
)

func main() {
	cmd.Execute()
}
