package main

import "taskjournal/cmd/taskjournal-cli/cmd"

func main() {
	cmd.Execute()
}
