package main

import "github.com/fittrack/fittrack-cli/cmd/fittrack"

func main() {
	fittrack.Execute()
}
