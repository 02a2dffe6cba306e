package main

import "flavortown/cmd/ft/root"

func main() {
	root.Execute()
}
