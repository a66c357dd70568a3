package main

import (
	"github.com/hockyg/vmdstream/cmd"
)

func main() {
	cmd.Execute()
}
