package main

import (
	"dnevnik/cmd/dnevnik/cmd"
)

func main() {
	cmd.Execute()
}
