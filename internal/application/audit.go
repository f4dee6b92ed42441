package application

import (
	"log"

	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/domain/audit"
	"github.com/Hernadil/tracker/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) ListLogs(q repository.AuditQuery) ([]audit.AuditLog, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	return s.Repos.Audit.ListAuditLogs(q)
}

// CleanupOldLogs drops audit rows past the retention window.
func (s *AuditService) CleanupOldLogs() {
	if err := s.Repos.Audit.PruneAuditLogs(config.AuditRetentionDays); err != nil {
		log.Printf("[audit] cleanup failed: %v", err)
	}
}
