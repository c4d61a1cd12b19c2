package main

import (
	"github.com/jinyuli/uvm/src/cmd"

	// Import languages to register them
	_ "github.com/jinyuli/uvm/src/runtimes/golang"
	_ "github.com/jinyuli/uvm/src/runtimes/java"
	_ "github.com/jinyuli/uvm/src/runtimes/node"
)

func main() {
	cmd.Execute()
}
