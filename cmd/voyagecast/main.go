package main

import (
	"github.com/jferrer/voyagecast-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
