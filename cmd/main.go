package main

import (
	cmd "github.com/Hikari118/mercari-build-training/cmd/mercari"
)

func main() {
	cmd.Execute()
}
