package main

import "repocards/internal/cmd"

func main() {
	cmd.Execute()
}
