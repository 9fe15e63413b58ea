package main

import "github.com/arifer612/undock-compose/internal/cmd"

func main() {
	cmd.Execute()
}
