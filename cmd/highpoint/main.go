// Command highpoint is the CLI front end for the viewpoint search core.
// Grounded on cmd/recast's main.go: delegate entirely to the cobra root
// command.
package main

import "github.com/sytelus/highpoint/cmd/highpoint/cmd"

func main() {
	cmd.Execute()
}
