// File: digitalmindset/main.go
package main

import (
	"os"

	"digitalmindset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
