package main

import (
	"fmt"
	"os"

	"github.com/mleoca/ucn/cmd/ucn"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
