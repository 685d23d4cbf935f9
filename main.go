package main

import "broodradar/cmd"

func main() {
	cmd.Execute()
}
