package middleware

import (
	"campus-smart-planner/config"
	"campus-smart-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *clientLimiter
}

func New(l log.Logger, cfg config.PlannerConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientLimiter(cfg.RateLimitPerMin),
	}
}
