package main

import (
	"github.com/Shu5555/jinro-app/internal/cli"
)

func main() {
	cli.Execute()
}
