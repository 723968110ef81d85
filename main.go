package main

import "go-netcfg/cmd"

func main() {
	cmd.Execute()
}
