//go:generate swag init -g cmd/serve.go -o docs/swagger

package main

import "spreader-detector/cmd"

func main() {
	cmd.Execute()
}
