package cron

import (
	"log"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/config"
)

// StartCleanupTask prunes expired audit rows once at startup and then daily.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", config.AuditRetentionDays)

		auditService.CleanupOldLogs()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			auditService.CleanupOldLogs()
		}
	}()
}
