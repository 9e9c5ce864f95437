package middleware

import (
	"tax-practice-management/config"
	"tax-practice-management/pkg/cache"
	"tax-practice-management/pkg/log"
	"tax-practice-management/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
	respCache  *cache.ResponseCache
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config, respCache *cache.ResponseCache) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		respCache:  respCache,
	}
}
