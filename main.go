package main

import (
	"github.com/Laisky/video-search/cmd"
)

func main() {
	cmd.Execute()
}
