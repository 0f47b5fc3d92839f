package middlewares

import (
	"golang.org/x/time/rate"
	"regexlab/internal/app/infrastructure/storage"
	"regexlab/pkg/logger"
	"time"
)

type Middlewares struct {
	log      logger.Logger
	limiters *storage.Cache[*rate.Limiter]
}

func New(log logger.Logger) *Middlewares {
	return &Middlewares{
		log:      log,
		limiters: storage.NewCache[*rate.Limiter](100000, storage.WithIdleTTL[*rate.Limiter](10*time.Minute)),
	}
}
