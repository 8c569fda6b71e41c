package main

import (
	"fmt"
	"os"

	"procounsel/cmd/procounsel"
)

func main() {
	if err := procounsel.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
