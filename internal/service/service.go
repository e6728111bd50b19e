package service

import (
	"github.com/google/wire"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewService)

// Service exposes the room over HTTP.
type Service struct {
	uc  *biz.Usecase
	log *log.Helper
}

func NewService(uc *biz.Usecase, logger log.Logger) *Service {
	return &Service{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}
