package main

import "ResumeBot/cmd"

func main() {
	cmd.Execute()
}
