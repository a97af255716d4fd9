// Command wscatalog inspects, validates and generates code from the
// WebSocket topic and command catalog.
package main

import "github.com/nfrund/wscatalog/cmd/wscatalog/cmd"

func main() {
	cmd.Execute()
}
