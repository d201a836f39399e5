package main

import "hourlog/cmd/hourlog/root"

func main() {
	root.Execute()
}
