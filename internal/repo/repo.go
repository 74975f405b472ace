package repo

import (
	"github.com/koquifi/lottoframe/internal/pg"
	drawrepo "github.com/koquifi/lottoframe/internal/repo/draw-repo"
	notificationrepo "github.com/koquifi/lottoframe/internal/repo/notification-repo"
	ticketrepo "github.com/koquifi/lottoframe/internal/repo/ticket-repo"
	"github.com/koquifi/lottoframe/internal/service/drawservice"
	"github.com/koquifi/lottoframe/internal/service/notificationservice"
	"github.com/koquifi/lottoframe/internal/service/ticketservice"
)

type Repositories struct {
	TicketRepo       ticketservice.Repo
	DrawRepo         drawservice.Repo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	ticketRepo := ticketrepo.New(conn, txManager)
	drawRepo := drawrepo.New(conn, txManager)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		TicketRepo:       ticketRepo,
		DrawRepo:         drawRepo,
		NotificationRepo: notificationRepo,
	}
}
