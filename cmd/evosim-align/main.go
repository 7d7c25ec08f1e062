// cmd/evosim-align/main.go
package main

import (
	"evosim/internal/alignapp"
	"evosim/internal/appshell"
)

func main() {
	appshell.Main(alignapp.RunContext)
}
