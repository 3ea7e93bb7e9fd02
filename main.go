package main

import "github.com/procdash/procdash/cmd"

func main() {
	cmd.Execute()
}
