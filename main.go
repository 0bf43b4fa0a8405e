// Command dddinspect prints coarse metadata for a tachograph DDD file as JSON.
package main

import "github.com/maxvaer/dddtools/cmd"

func main() {
	cmd.Execute()
}
