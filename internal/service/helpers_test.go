package service_test

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
	"github.com/credicardpos/console-backend/internal/store"
)

// testDirectory returns three clients, directory order A, B, C.
func testDirectory() []model.Client {
	return []model.Client{
		{ID: "a", Name: "FERRETERIA ALPECA CA", RIF: "J-407012231", Telefono: "4246044513", Banco: "ACTIVO", Region: "NOR-OCCIDENTE", Gestion: "EQUIPO EN TALLER", Initials: "FA", CodigoAfiliado: "83477245", Afipos: 834772452, TerminalsCount: 2, Rango: "120 DIAS SIN TX"},
		{ID: "b", Name: "PISTACHOS SC CA", RIF: "J-504561266", Telefono: "4145693212", Banco: "501-BICENTENARIO", Region: "SUR-OCCIDENTE", Gestion: "POR GESTIONAR", Initials: "PS", CodigoAfiliado: "85873016", Afipos: 858730161, TerminalsCount: 1, Rango: "SIN TX EN EL MES ACTUAL"},
		{ID: "c", Name: "AUVERT HERNANDEZ JENJAY", RIF: "V-166883128", Telefono: "4146550544", Banco: "BANCO DE VENEZUELA", Region: "NOR-OCCIDENTE", Gestion: "CONTACTAR DE NUEVO", Initials: "AH", CodigoAfiliado: "78459166", Afipos: 784591662, TerminalsCount: 2, Rango: "SIN TX EN EL MES ACTUAL"},
	}
}

func memberFor(clientID, memberID string, status model.DeliveryStatus) model.CampaignMember {
	return model.CampaignMember{
		ID:         memberID,
		ClientID:   clientID,
		Name:       "member-" + clientID,
		Phone:      "0000",
		Status:     status,
		LastUpdate: time.Now(),
	}
}

// newTestService builds a service over the test directory and one campaign
// in the given status with the given members.
func newTestService(status model.CampaignStatus, members ...model.CampaignMember) (*service.CampaignService, string) {
	directory := store.NewDirectoryStore()
	directory.Replace(testDirectory())

	campaigns := store.NewCampaignStore()
	campaign := &model.Campaign{
		ID:      "camp-1",
		Title:   "Recuperación Test",
		Status:  status,
		Channel: model.ChannelWhatsApp,
		Message: "Hola {{nombre}}",
		Members: members,
	}
	campaign.Audience = len(members)
	campaigns.Insert(campaign)

	svc := service.NewCampaignService(directory, campaigns, store.NewEventStore(), zerolog.Nop())
	return svc, campaign.ID
}
