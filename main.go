package main

import "formdesk/cmd"

func main() {
	cmd.Execute()
}
