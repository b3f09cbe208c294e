package main

import (
	"repoman/internal/cmd"
)

func main() {
	cmd.Execute()
}
