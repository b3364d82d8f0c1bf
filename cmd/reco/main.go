package main

import "github.com/nutrireco/go-reco-engine/internal/cli"

func main() {
	cli.Execute()
}
