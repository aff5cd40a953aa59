package main

import "github.com/philipp01105/richlog/internal/cmd"

func main() {
	cmd.Execute()
}
