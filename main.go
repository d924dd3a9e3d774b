package main

import "github.com/viktor-yakubiv/lp/cmd"

func main() {
	cmd.Execute()
}
