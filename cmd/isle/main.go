package main

import "github.com/aa0979783096-byte/hamster-island/cmd/isle/root"

func main() {
	root.Execute()
}
