package dao

import (
	"testing"
	"time"

	"github.com/polymertrack/sms-notifier/model"
	"github.com/stretchr/testify/require"
)

func TestHealthDao_SaveAndGet(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	healthDao := NewHealthDao(db)

	_, err := healthDao.GetOneByProvider("smsline")
	require.Error(t, err)

	now := time.Now()
	record := &model.ProviderHealth{
		Provider:      "smsline",
		SuccessCount:  1,
		Status:        model.HEALTHY,
		LastSuccessAt: &now,
		CheckedAt:     now,
	}
	require.NoError(t, healthDao.Save(record))

	stored, err := healthDao.GetOneByProvider("smsline")
	require.NoError(t, err)
	require.Equal(t, 1, stored.SuccessCount)
	require.Equal(t, model.HEALTHY, stored.Status)
}

func TestHealthDao_SaveUpserts(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	healthDao := NewHealthDao(db)

	record := &model.ProviderHealth{Provider: "twilio", FailureCount: 1, Status: model.HEALTHY, CheckedAt: time.Now()}
	require.NoError(t, healthDao.Save(record))

	record.FailureCount = 2
	record.Status = model.DEGRADED
	record.LastError = "twilio: rate limited"
	require.NoError(t, healthDao.Save(record))

	stored, err := healthDao.GetOneByProvider("twilio")
	require.NoError(t, err)
	require.Equal(t, 2, stored.FailureCount)
	require.Equal(t, model.DEGRADED, stored.Status)
	require.Equal(t, "twilio: rate limited", stored.LastError)

	all, err := healthDao.GetAll()
	require.NoError(t, err)
	require.Equal(t, 1, len(all))
}
