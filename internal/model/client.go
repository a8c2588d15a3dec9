// internal/model/client.go
package model

// Client is an affiliated merchant as imported from the operations Excel.
// The engine treats clients as read-only; the directory is owned by the
// import pipeline.
type Client struct {
	ID             string `json:"id"`
	Afipos         int    `json:"afipos"`
	CodigoAfiliado string `json:"codigo_afiliado"`
	RIF            string `json:"rif"`

	Name            string `json:"name"`
	PersonaContacto string `json:"persona_contacto"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	Email           string `json:"email,omitempty"`

	Banco             string `json:"banco"`
	Region            string `json:"region"`
	Estado            string `json:"estado"`
	Ciudad            string `json:"ciudad"`
	Sector            string `json:"sector"`
	CategoriaComercio string `json:"categoria_comercio"`

	TerminalsCount int `json:"terminals_count"`

	// Rango is the transactional inactivity bucket (e.g. "30 DIAS SIN TX").
	Rango string `json:"rango"`
	// Gestion is the recovery-management status (e.g. "POR GESTIONAR").
	Gestion string `json:"gestion"`

	Initials string `json:"initials"`
}

// ClientFilter is the faceted filter applied to the directory. Empty slices
// mean "no constraint" for that facet.
type ClientFilter struct {
	Query    string
	Banks    []string
	Regions  []string
	Gestions []string
}
