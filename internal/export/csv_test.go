package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/credicardpos/console-backend/internal/export"
	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/seed"
	"github.com/credicardpos/console-backend/internal/service"
)

func TestWriteClientsHeaderOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteClients(&buf, nil); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d rows", len(records))
	}

	want := "AFIPOS,NUMPOS,CODIGO_AFILIADO,NOMBRE_AFILIADO,RIF_AFILIADO,TELEFONO_AFILIADO,PERSONA_CONTACTO,DIRECCION_AFILIADO,NOMBRE_BANCO,REGION,ESTADO,CIUDAD,SECTOR,CATEGORIA_COMERCIO,RANGO,GESTION"
	if got := strings.Join(records[0], ","); got != want {
		t.Fatalf("header mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRowCountMatchesFilteredClients(t *testing.T) {
	clients := seed.Clients()

	filters := []model.ClientFilter{
		{},
		{Banks: []string{"BANCO DE VENEZUELA"}},
		{Regions: []string{"NOR-OCCIDENTE"}},
		{Gestions: []string{"POR GESTIONAR"}},
		{Banks: []string{"BANPLUS"}, Regions: []string{"SUR-OCCIDENTE"}},
		{Gestions: []string{"NO SUCH STATUS"}},
	}

	for _, filter := range filters {
		filtered := service.FilterClients(clients, filter)

		var buf bytes.Buffer
		if err := export.WriteClients(&buf, filtered); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}

		if got := len(records) - 1; got != len(filtered) {
			t.Fatalf("filter %+v: expected %d rows, got %d", filter, len(filtered), got)
		}
	}
}

func TestEmbeddedQuotesAndCommasAreEscaped(t *testing.T) {
	clients := []model.Client{{
		ID: "x", Afipos: 1, TerminalsCount: 1,
		CodigoAfiliado: "1", RIF: "J-1",
		Name:            `COMERCIAL "EL TIGRE", CA`,
		PersonaContacto: "PEREZ, JUAN",
		Direccion:       `AV 5 "LOCAL 3"`,
		Banco:           "BANPLUS", Region: "CENTRO", Estado: "Lara",
		Ciudad: "BARQUISIMETO", Sector: "GENERICO", CategoriaComercio: "FERRETERIAS",
		Rango: "30 DIAS SIN TX", Gestion: "POR GESTIONAR",
	}}

	var buf bytes.Buffer
	if err := export.WriteClients(&buf, clients); err != nil {
		t.Fatal(err)
	}

	// A strict RFC-4180 reader must round-trip the fields intact.
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	row := records[1]
	if row[3] != `COMERCIAL "EL TIGRE", CA` {
		t.Fatalf("name not round-tripped: %q", row[3])
	}
	if row[6] != "PEREZ, JUAN" {
		t.Fatalf("contact not round-tripped: %q", row[6])
	}
}

func TestRowsKeepFilteredOrder(t *testing.T) {
	clients := seed.Clients()

	var buf bytes.Buffer
	if err := export.WriteClients(&buf, clients); err != nil {
		t.Fatal(err)
	}
	records, _ := csv.NewReader(&buf).ReadAll()

	for i, c := range clients {
		if records[i+1][3] != c.Name {
			t.Fatalf("row %d out of order: got %q, want %q", i, records[i+1][3], c.Name)
		}
	}
}
