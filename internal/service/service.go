package service

import (
	"github.com/koquifi/lottoframe/internal/config"
	"github.com/koquifi/lottoframe/internal/pg"
	"github.com/koquifi/lottoframe/internal/repo"
	"github.com/koquifi/lottoframe/internal/rng"
	drawservice "github.com/koquifi/lottoframe/internal/service/drawservice"
	notificationservice "github.com/koquifi/lottoframe/internal/service/notificationservice"
	ticketservice "github.com/koquifi/lottoframe/internal/service/ticketservice"
)

type Services struct {
	TicketService       *ticketservice.Service
	DrawService         *drawservice.Service
	NotificationService *notificationservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, poolClient drawservice.PoolClient) *Services {
	source := rng.New()

	notificationService := notificationservice.New(repo.NotificationRepo)
	ticketService := ticketservice.New(repo.TicketRepo, source, notificationService, cfg.TicketPrice)
	tiers := drawservice.NewTiers(cfg.Tier1Share, cfg.Tier2Share, cfg.Tier3Share)
	drawService := drawservice.New(ticketService, repo.DrawRepo, poolClient, notificationService, source, txManager, tiers, cfg.BasePool, cfg.TicketPrice)

	return &Services{
		TicketService:       ticketService,
		DrawService:         drawService,
		NotificationService: notificationService,
	}
}
