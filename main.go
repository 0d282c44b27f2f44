// Package main provides the gtdbfetch CLI application.
// gtdbfetch downloads GTDB genome assemblies selected by taxon.
package main

import (
	"github.com/gtdbfetch/gtdbfetch/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cmd.Execute()
}
