package main

import "github.com/emrekoc/gotrib/cmd"

func main() {
	cmd.Execute()
}
