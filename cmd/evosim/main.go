// cmd/evosim/main.go
package main

import (
	"evosim/internal/app"
	"evosim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
