package main

import "bytebite/seeder/cmd"

func main() {
	cmd.Execute()
}
