package main

import "github.com/theirongolddev/scaleos/cmd"

func main() {
	cmd.Execute()
}
