package main

import "github.com/Alijeyrad/glider_backend/cmd"

func main() {
	cmd.Execute()
}
