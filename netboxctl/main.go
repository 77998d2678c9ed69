package main

import (
	"github.com/team-telnyx/netbox/netboxctl/cmd"
)

func main() {
	cmd.Execute()
}
