// internal/export/csv.go
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/credicardpos/console-backend/internal/model"
)

// Filename is the download name of the master export.
const Filename = "credicardpos_export_master.csv"

// Headers is the fixed column order matching the operations Excel.
var Headers = []string{
	"AFIPOS", "NUMPOS", "CODIGO_AFILIADO", "NOMBRE_AFILIADO", "RIF_AFILIADO",
	"TELEFONO_AFILIADO", "PERSONA_CONTACTO", "DIRECCION_AFILIADO", "NOMBRE_BANCO",
	"REGION", "ESTADO", "CIUDAD", "SECTOR", "CATEGORIA_COMERCIO",
	"RANGO", "GESTION",
}

// WriteClients writes one row per client in the given order. encoding/csv
// handles RFC-4180 quoting, so embedded commas and quotes are escaped
// correctly.
func WriteClients(w io.Writer, clients []model.Client) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, c := range clients {
		row := []string{
			strconv.Itoa(c.Afipos),
			strconv.Itoa(c.TerminalsCount),
			c.CodigoAfiliado,
			c.Name,
			c.RIF,
			c.Telefono,
			c.PersonaContacto,
			c.Direccion,
			c.Banco,
			c.Region,
			c.Estado,
			c.Ciudad,
			c.Sector,
			c.CategoriaComercio,
			c.Rango,
			c.Gestion,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
