package main

import "stepquest/cmd/sq/root"

func main() {
	root.Execute()
}
