package main

import "github.com/HatsuSumi/project-stats/internal/cmd"

func main() {
	cmd.Execute()
}
