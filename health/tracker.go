package health

import (
	"sync"
	"time"

	"github.com/polymertrack/sms-notifier/dao"
	"github.com/polymertrack/sms-notifier/model"
	"go.uber.org/zap"
)

const (
	//DefaultDegradedAt is the consecutive failure count at which a provider is reported degraded
	DefaultDegradedAt = 2
	//DefaultDownAt is the consecutive failure count at which a provider is reported down
	DefaultDownAt = 5
)

//Tracker keeps a rolling health record per gateway. It is informational
//only and never gates the delivery routing.
type Tracker interface {
	RecordSuccess(provider string)
	RecordFailure(provider, errText string)
	Health(provider string) (model.ProviderHealth, error)
	All() ([]model.ProviderHealth, error)
}

func NewTracker(healthDao dao.HealthDao, degradedAt, downAt int, logger *zap.Logger) Tracker {
	if degradedAt <= 0 {
		degradedAt = DefaultDegradedAt
	}
	if downAt <= 0 {
		downAt = DefaultDownAt
	}
	return &tracker{
		dao:        healthDao,
		degradedAt: degradedAt,
		downAt:     downAt,
		logger:     logger,
	}
}

type tracker struct {
	dao        dao.HealthDao
	degradedAt int
	downAt     int
	logger     *zap.Logger
	mutex      sync.Mutex
}

func (t *tracker) RecordSuccess(provider string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	record := t.load(provider)
	now := time.Now()
	record.SuccessCount++
	//a success restores the classification but keeps the cumulative failure count
	record.ConsecutiveFailures = 0
	record.LastSuccessAt = &now
	record.Status = model.HEALTHY
	record.CheckedAt = now

	if err := t.dao.Save(&record); err != nil {
		t.logger.Error("Error saving provider health", zap.String("provider", provider), zap.Error(err))
	}
}

func (t *tracker) RecordFailure(provider, errText string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	record := t.load(provider)
	now := time.Now()
	record.FailureCount++
	record.ConsecutiveFailures++
	record.LastFailureAt = &now
	record.LastError = errText
	record.Status = t.classify(record.ConsecutiveFailures)
	record.CheckedAt = now

	if err := t.dao.Save(&record); err != nil {
		t.logger.Error("Error saving provider health", zap.String("provider", provider), zap.Error(err))
	}
}

func (t *tracker) Health(provider string) (model.ProviderHealth, error) {
	return t.dao.GetOneByProvider(provider)
}

func (t *tracker) All() ([]model.ProviderHealth, error) {
	return t.dao.GetAll()
}

//load returns the stored record or a fresh one on first use of a provider
func (t *tracker) load(provider string) model.ProviderHealth {
	record, err := t.dao.GetOneByProvider(provider)
	if err != nil {
		return model.ProviderHealth{Provider: provider, Status: model.HEALTHY}
	}
	return record
}

func (t *tracker) classify(consecutiveFailures int) string {
	switch {
	case consecutiveFailures >= t.downAt:
		return model.DOWN
	case consecutiveFailures >= t.degradedAt:
		return model.DEGRADED
	default:
		return model.HEALTHY
	}
}
