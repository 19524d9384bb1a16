package main

import "github.com/GriffinCanCode/primecore/internal/cli"

func main() {
	cli.Main()
}
