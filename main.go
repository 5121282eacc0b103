package main

import "kucukaslan/hello/cmd"

func main() {
	cmd.Execute()
}
