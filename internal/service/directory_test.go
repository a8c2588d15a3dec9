package service_test

import (
	"testing"

	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
)

func TestFilterClientsNoFilterReturnsAll(t *testing.T) {
	all := testDirectory()
	got := service.FilterClients(all, model.ClientFilter{})
	if len(got) != len(all) {
		t.Fatalf("expected %d clients, got %d", len(all), len(got))
	}
	for i := range all {
		if got[i].ID != all[i].ID {
			t.Fatalf("filter must preserve directory order")
		}
	}
}

func TestFilterClientsFacets(t *testing.T) {
	all := testDirectory()

	byBank := service.FilterClients(all, model.ClientFilter{Banks: []string{"ACTIVO"}})
	if len(byBank) != 1 || byBank[0].ID != "a" {
		t.Fatalf("bank facet: got %v", byBank)
	}

	byRegion := service.FilterClients(all, model.ClientFilter{Regions: []string{"NOR-OCCIDENTE"}})
	if len(byRegion) != 2 {
		t.Fatalf("region facet: expected 2, got %d", len(byRegion))
	}

	byGestion := service.FilterClients(all, model.ClientFilter{Gestions: []string{"POR GESTIONAR", "CONTACTAR DE NUEVO"}})
	if len(byGestion) != 2 {
		t.Fatalf("gestion facet: expected 2, got %d", len(byGestion))
	}

	combined := service.FilterClients(all, model.ClientFilter{
		Regions:  []string{"NOR-OCCIDENTE"},
		Gestions: []string{"CONTACTAR DE NUEVO"},
	})
	if len(combined) != 1 || combined[0].ID != "c" {
		t.Fatalf("combined facets: got %v", combined)
	}
}

func TestFilterClientsSearch(t *testing.T) {
	all := testDirectory()

	byName := service.FilterClients(all, model.ClientFilter{Query: "pistachos"})
	if len(byName) != 1 || byName[0].ID != "b" {
		t.Fatalf("name search: got %v", byName)
	}

	byCode := service.FilterClients(all, model.ClientFilter{Query: "78459166"})
	if len(byCode) != 1 || byCode[0].ID != "c" {
		t.Fatalf("affiliate code search: got %v", byCode)
	}

	none := service.FilterClients(all, model.ClientFilter{Query: "no-such-client"})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}
