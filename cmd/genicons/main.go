// Command genicons renders the DDD viewer's activity pictograms.
package main

import "github.com/maxvaer/dddtools/cmd"

//go:generate go run . --out ../../assets/event-icons --quiet

func main() {
	cmd.ExecuteIcons()
}
