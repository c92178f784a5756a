// Command roomgen generates room layouts from the command line.
//
// Usage:
//
//	roomgen list
//	roomgen describe walker --set max_agents=8
//	roomgen generate cellular --seed 3 --steps 2
//	roomgen generate --config cave.yaml --metrics-file roomgen.prom
package main

import (
	"os"

	_ "roomgen/pkg/gen/cellular"
	_ "roomgen/pkg/gen/walker"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
