// internal/seed/seed.go
//
// Demo dataset mirroring the operations Excel. Until the real import
// pipeline lands, the stores are seeded with this snapshot at startup.
package seed

import (
	"time"

	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/store"
)

// Clients returns the demo directory in import order.
func Clients() []model.Client {
	return []model.Client{
		{
			ID: "1", Afipos: 799922831, CodigoAfiliado: "79992283", RIF: "V-043258768",
			Name: "RAMON IGNACIO ABREU DELGADO", PersonaContacto: "RAMON IGNACIO ABREU DELGADO",
			Telefono: "2714147116", Direccion: "CALLE PRINCIPAL", Email: "ramon.abreu@gmail.com",
			Banco: "BANPLUS", Region: "SUR-OCCIDENTE", Estado: "Trujillo", Ciudad: "LA QUEBRADA",
			Sector: "GENERICO", CategoriaComercio: "COMIDAS RAPIDAS FTE SODAS",
			TerminalsCount: 1, Rango: "SIN TX EN EL MES ACTUAL", Gestion: "POR GESTIONAR", Initials: "RA",
		},
		{
			ID: "2", Afipos: 721252401, CodigoAfiliado: "72125240", RIF: "V-189285309",
			Name: "LUISRAIDY GERALDIN ACURERO VA", PersonaContacto: "ACURERO VASQUEZ LUISRAIDY GERA",
			Telefono: "2563361534", Direccion: "AV 3 ENTRE CALLEJON 16 LOCAL N", Email: "luisraidy.a@hotmail.com",
			Banco: "BANCO DEL CARIBE", Region: "CENTRO LLANOS", Estado: "Portuguesa", Ciudad: "VILLA BRUZUAL",
			Sector: "GENERICO", CategoriaComercio: "SUPERMERCADOS ABASTOS",
			TerminalsCount: 1, Rango: "SIN TX EN EL MES ACTUAL", Gestion: "POR GESTIONAR", Initials: "LA",
		},
		{
			ID: "3", Afipos: 852198472, CodigoAfiliado: "85219847", RIF: "V-206222537",
			Name: "CARLA FABIOLA GUTIERREZ GUANI", PersonaContacto: "CARLA FABIOLA GUTIERREZ",
			Telefono: "4246389711", Direccion: "CALLE SAN MARTIN LOCAL SIN NUM", Email: "carla.gutierrez@yahoo.com",
			Banco: "BANCO DE VENEZUELA", Region: "NOR-OCCIDENTE", Estado: "Zulia", Ciudad: "CABIMAS",
			Sector: "GENERICO", CategoriaComercio: "SUPERMERCADOS ABASTOS",
			TerminalsCount: 2, Rango: "30 DIAS SIN TX", Gestion: "ILOCALIZABLE", Initials: "CG",
		},
		{
			ID: "4", Afipos: 834772452, CodigoAfiliado: "83477245", RIF: "J-407012231",
			Name: "FERRETERIA ALPECA CA", PersonaContacto: "VILLALOBOS MELENDEZ RAIDA",
			Telefono: "4246044513", Direccion: "AV 4 CON CALL 67 CC COSTA", Email: "ferreteria.alpeca@gmail.com",
			Banco: "ACTIVO", Region: "NOR-OCCIDENTE", Estado: "Zulia", Ciudad: "MARACAIBO",
			Sector: "N1 18 DE OCTUBRE", CategoriaComercio: "FERRETERIAS",
			TerminalsCount: 2, Rango: "120 DIAS SIN TX", Gestion: "EQUIPO EN TALLER", Initials: "FA",
		},
		{
			ID: "5", Afipos: 858730161, CodigoAfiliado: "85873016", RIF: "J-504561266",
			Name: "PISTACHOS SC CA", PersonaContacto: "TORRES CARRERO FRANCHESKA",
			Telefono: "4145693212", Direccion: "LA CARRERA 20", Email: "pistachos.sc@gmail.com",
			Banco: "501-BICENTENARIO", Region: "SUR-OCCIDENTE", Estado: "Táchira", Ciudad: "SAN CRISTOBAL",
			Sector: "GENERICO", CategoriaComercio: "PANADERIA PASTELERIA",
			TerminalsCount: 1, Rango: "SIN TX EN EL MES ACTUAL", Gestion: "POR GESTIONAR", Initials: "PS",
		},
		{
			ID: "6", Afipos: 784591662, CodigoAfiliado: "78459166", RIF: "V-166883128",
			Name: "AUVERT HERNANDEZ JENJAY", PersonaContacto: "AUVERT HERNANDEZ JENJAY",
			Telefono: "4146550544", Direccion: "CL 4 CASA SN", Email: "auvert.h@gmail.com",
			Banco: "BANCO DE VENEZUELA", Region: "NOR-OCCIDENTE", Estado: "Zulia", Ciudad: "MARACAIBO",
			Sector: "GENERICO", CategoriaComercio: "SUPERMERCADOS ABASTOS",
			TerminalsCount: 2, Rango: "SIN TX EN EL MES ACTUAL", Gestion: "CONTACTAR DE NUEVO", Initials: "AH",
		},
	}
}

// Campaigns returns the demo board. The sending campaign carries the member
// list used by the audience tab.
func Campaigns(now time.Time) []model.Campaign {
	members := []model.CampaignMember{
		{ID: "m1", ClientID: "4", Name: "FERRETERIA ALPECA CA", Phone: "+58 414 1234567", Status: model.DeliveryReplied, LastUpdate: now.Add(-5 * time.Minute)},
		{ID: "m2", ClientID: "5", Name: "PISTACHOS SC CA", Phone: "+58 412 9876543", Status: model.DeliveryRead, LastUpdate: now.Add(-1 * time.Hour)},
		{ID: "m3", ClientID: "6", Name: "AUVERT HERNANDEZ JENJAY", Phone: "+58 424 1112233", Status: model.DeliveryDelivered, LastUpdate: now.Add(-2 * time.Hour)},
		{ID: "m4", ClientID: "3", Name: "CARLA FABIOLA GUTIERREZ GUANI", Phone: "+58 416 5556677", Status: model.DeliveryFailed, LastUpdate: now.Add(-24 * time.Hour)},
	}

	return []model.Campaign{
		{
			ID: "c1", Title: "Recuperación Zulia Noviembre", Status: model.StatusDraft,
			Channel: model.ChannelEmail, Audience: 150, Tags: []string{"Email", "SMS"},
			Message:    "Buenas tardes, Sr. {{nombre}}. Le saluda Geovanny Cañizalez de CREDICARDPOS. Notamos que su punto de venta del banco {{banco}} no ha registrado transacciones desde hace {{dias_inactivo}} días. ¿Podría comentarnos el motivo o si requiere apoyo para reactivarlo?",
			BankFilter: "Todos", InactivityDays: "30 DIAS SIN TX", RegionFilter: "NOR-OCCIDENTE",
			Stats: &model.CampaignStats{}, CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID: "c2", Title: "Bienvenida Nuevos Afiliados", Status: model.StatusScheduled,
			Channel: model.ChannelEmail, Audience: 12, Tags: []string{"Email"},
			Message:    "Bienvenido {{nombre}} a la red CREDICARDPOS.",
			BankFilter: "Todos", InactivityDays: "SIN TX EN EL MES ACTUAL", RegionFilter: "Todas",
			Stats: &model.CampaignStats{}, CreatedAt: now.AddDate(0, 0, -7),
		},
		{
			ID: "c3", Title: "Aviso Mantenimiento BOD", Status: model.StatusSending,
			Channel: model.ChannelWhatsApp, Audience: len(members), Tags: []string{"Push"}, Progress: 45,
			Message:    "Sr. {{nombre}}, su punto de venta entrará en mantenimiento programado.",
			BankFilter: "Todos", InactivityDays: "30 DIAS SIN TX", RegionFilter: "Todas",
			Members:   members,
			Stats:     &model.CampaignStats{Sent: 540, Delivered: 400, Read: 120, Replied: 5},
			CreatedAt: now,
		},
		{
			ID: "c4", Title: "Campaña Inactivos > 60 dias", Status: model.StatusCompleted,
			Channel: model.ChannelEmail, Audience: 850, Tags: []string{"Email", "Banner"}, Progress: 100,
			Message:    "Sr. {{nombre}}, queremos ayudarle a reactivar su terminal.",
			BankFilter: "Todos", InactivityDays: "60 DIAS SIN TX", RegionFilter: "Todas",
			Stats:     &model.CampaignStats{Sent: 850, Delivered: 840, Read: 600, Replied: 145},
			CreatedAt: now.AddDate(0, 0, -13),
		},
		{
			ID: "c5", Title: "Encuesta Satisfaccion", Status: model.StatusDraft,
			Channel: model.ChannelSMS, Audience: 45, Tags: []string{"Call"},
			Message:    "Hola {{nombre}}, ¿cómo calificaría nuestro servicio?",
			BankFilter: "Todos", InactivityDays: "30 DIAS SIN TX", RegionFilter: "Todas",
			Stats: &model.CampaignStats{}, CreatedAt: now.AddDate(0, 0, 2),
		},
	}
}

// hourlyActivity mirrors the demo interaction series: sent and reply counts
// per two-hour slot of the send day.
var hourlyActivity = []struct {
	hour    int
	sent    int
	replies int
}{
	{8, 50, 2},
	{10, 120, 15},
	{12, 80, 35},
	{14, 40, 20},
	{16, 60, 40},
	{18, 20, 10},
}

// Events expands the demo activity table into individual member events for
// campaign c3.
func Events(now time.Time) []model.MemberEvent {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var events []model.MemberEvent
	for _, slot := range hourlyActivity {
		at := day.Add(time.Duration(slot.hour) * time.Hour)
		for i := 0; i < slot.sent; i++ {
			events = append(events, model.MemberEvent{CampaignID: "c3", Type: model.EventSent, At: at})
		}
		for i := 0; i < slot.replies; i++ {
			events = append(events, model.MemberEvent{CampaignID: "c3", Type: model.EventReply, At: at.Add(15 * time.Minute)})
		}
	}
	return events
}

// Load populates the stores with the demo snapshot.
func Load(directory *store.DirectoryStore, campaigns *store.CampaignStore, events *store.EventStore) {
	now := time.Now()
	directory.Replace(Clients())
	for _, c := range Campaigns(now) {
		campaign := c
		campaigns.Insert(&campaign)
	}
	events.Append(Events(now)...)
}
