package service

import (
	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/store"
)

// Services aggregates the console's service layer.
type Services struct {
	SessionService     SessionService
	LearnerService     LearnerService
	CourseService      CourseService
	CertificateService CertificateService
}

// Adapters groups the backend clients NewServices wires together.
type Adapters struct {
	Router  adapter.RouterAdapter
	Admin   adapter.AdminAdapter
	Fetcher adapter.ObjectFetcher
}

// NewServices builds the full service layer. notifier receives every toast
// the action layer emits; onDownloadChange (may be nil) observes download
// state transitions for the UI.
func NewServices(adapters Adapters, storages *store.ConsoleStorages, saver action.FileSaver, notifier action.Notifier, log *logger.Logger, onDownloadChange func(action.DownloadState)) *Services {
	sessions := NewSessionService(adapters.Router, storages.SessionRepository, log)

	resends := action.NewResendManager(adapters.Router, adapters.Admin, notifier, log)
	downloads := action.NewDownloader(adapters.Router, adapters.Fetcher, saver, notifier, log, onDownloadChange)

	return &Services{
		SessionService:     sessions,
		LearnerService:     NewLearnerService(sessions, adapters.Router, adapters.Admin, log),
		CourseService:      NewCourseService(sessions, adapters.Router, log),
		CertificateService: NewCertificateService(sessions, resends, downloads, notifier, log),
	}
}
