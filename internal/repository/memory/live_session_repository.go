package memory

import (
	"time"

	"fikrswap-academy-be/internal/liveclass"

	"github.com/patrickmn/go-cache"
)

// LiveSessionRepository keeps each learner's in-class machine in memory.
// Entries expire after prolonged inactivity so abandoned sessions do not
// accumulate.
type LiveSessionRepository struct {
	cache *cache.Cache
}

func NewLiveSessionRepository() *LiveSessionRepository {
	// Sessions idle for 4 hours are purged; sweep every 10 minutes.
	c := cache.New(4*time.Hour, 10*time.Minute)
	return &LiveSessionRepository{
		cache: c,
	}
}

func (r *LiveSessionRepository) Save(userId string, session *liveclass.LearnerSession) {
	r.cache.Set(userId, session, cache.DefaultExpiration)
}

func (r *LiveSessionRepository) Get(userId string) (*liveclass.LearnerSession, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*liveclass.LearnerSession), true
	}
	return nil, false
}

func (r *LiveSessionRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
