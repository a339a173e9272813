package main

import "github.com/arl/goregion/cmd/regioncli/cmd"

func main() {
	cmd.Execute()
}
