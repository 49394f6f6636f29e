package api

import (
	"github.com/customizeworkflow/portal/internal/db"
	"github.com/customizeworkflow/portal/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.accounts = services.NewAccountService(handler.repositories.Accounts)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	if handler.accounts == nil {
		handler.accounts = services.NewAccountService(handler.repositories.Accounts)
	}
}
