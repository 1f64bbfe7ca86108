package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"campus-smart-planner/internal/model"
	"campus-smart-planner/internal/planner/resolver"
	"campus-smart-planner/pkg/gemini"
	pkgLog "campus-smart-planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *gemini.Client
	resolver *resolver.Resolver
	cache    *expirable.LRU[string, model.Task]
}

// New creates a new planner UseCase instance. cacheSize <= 0 disables the
// parse-result cache.
func New(l pkgLog.Logger, llm *gemini.Client, res *resolver.Resolver, cacheSize int, cacheTTL time.Duration) *implUseCase {
	uc := &implUseCase{
		l:        l,
		llm:      llm,
		resolver: res,
	}
	if cacheSize > 0 {
		uc.cache = expirable.NewLRU[string, model.Task](cacheSize, nil, cacheTTL)
	}
	return uc
}
