package main

import (
	"pptpd-setup/cmd"
)

func main() {
	cmd.Execute()
}
