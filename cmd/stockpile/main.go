package main

import "github.com/stockpiled/stockpile/internal/cmd"

func main() {
	cmd.Execute()
}
