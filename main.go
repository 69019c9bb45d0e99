package main

import "github.com/cmmoran/reflgen/cmd"

func main() {
	cmd.Execute()
}
