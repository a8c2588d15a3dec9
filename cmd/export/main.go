// cmd/export/main.go
//
// Offline export tool: writes the master CSV for the demo directory,
// optionally restricted by the same facets the console offers.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/credicardpos/console-backend/internal/export"
	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/seed"
	"github.com/credicardpos/console-backend/internal/service"
)

func main() {
	out := flag.String("o", export.Filename, "output file")
	query := flag.String("q", "", "search over name, initials, RIF and affiliate code")
	bank := flag.String("bank", "", "restrict to one bank")
	region := flag.String("region", "", "restrict to one region")
	gestion := flag.String("gestion", "", "restrict to one gestión status")
	flag.Parse()

	filter := model.ClientFilter{Query: *query}
	if *bank != "" {
		filter.Banks = []string{*bank}
	}
	if *region != "" {
		filter.Regions = []string{*region}
	}
	if *gestion != "" {
		filter.Gestions = []string{*gestion}
	}

	clients := service.FilterClients(seed.Clients(), filter)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *out, err)
	}
	defer f.Close()

	if err := export.WriteClients(f, clients); err != nil {
		log.Fatalf("failed to write export: %v", err)
	}

	fmt.Printf("Exported %d clients to %s\n", len(clients), *out)
}
