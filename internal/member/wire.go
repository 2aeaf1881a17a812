package member

import (
	"database/sql"

	"kiosk/internal/member/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewSQLiteMemberRepository(db)
	return NewController(repo, logger)
}
