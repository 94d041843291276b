package main

import "github.com/intmat/intmat/cmd/intmat/cmd"

func main() {
	cmd.Execute()
}
