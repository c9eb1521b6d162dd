package dao

import (
	"log"
	"testing"
	"time"

	"github.com/polymertrack/sms-notifier/model"
	"github.com/stretchr/testify/require"
)

const (
	PHONE  = "+15551234567"
	TEXT   = "Your order is ready"
	PHONE2 = "+15559876543"
	TEXT2  = "Job order JO-77 moved to extrusion"
)

var (
	ID1 uint32
	ID2 uint32
)

func prepareDB(t errorHandler) (Db, func()) {
	db, cleanup := createDB(t)

	//populate db
	msg := &model.Message{Phone: PHONE, Text: TEXT, Status: model.PENDING, CreatedAt: time.Now()}
	err := db.Save(msg)
	if err != nil {
		log.Fatal(err)
	}
	ID1 = msg.Id
	msg = &model.Message{Phone: PHONE2, Text: TEXT2, Status: model.PENDING, CreatedAt: time.Now().Add(-25 * time.Hour)}
	err = db.Save(msg)
	if err != nil {
		log.Fatal(err)
	}
	ID2 = msg.Id

	return db, cleanup
}

func TestMessageDao_Create(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	id, err := msgDao.Create(&model.Message{Phone: PHONE, Text: TEXT, Category: model.CATEGORY_ORDER, OrderId: "ORD-1001"})

	require.NoError(t, err)
	require.True(t, id > 0)

	msg, err := msgDao.GetOneById(id)
	require.NoError(t, err)
	require.Equal(t, model.PENDING, msg.Status)
	require.Equal(t, model.PRIORITY_NORMAL, msg.Priority)
	require.Equal(t, "ORD-1001", msg.OrderId)
	require.False(t, msg.CreatedAt.IsZero())
	require.False(t, msg.SentAt.IsZero())
}

func TestMessageDao_GetOneById(t *testing.T) {
	db, cleanup := prepareDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	msg, err := msgDao.GetOneById(ID1)

	require.NoError(t, err)
	require.NotEmpty(t, msg)
	require.Equal(t, ID1, msg.Id)
}

func TestMessageDao_GetAll(t *testing.T) {
	db, cleanup := prepareDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	all, err := msgDao.GetAll()

	require.NoError(t, err)
	require.Equal(t, 2, len(all))
}

func TestMessageDao_UpdateDelivery(t *testing.T) {
	db, cleanup := prepareDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	updated, err := msgDao.UpdateDelivery(ID1, model.SENT, "twilio", "SM123", "sent via twilio")

	require.NoError(t, err)
	require.Equal(t, model.SENT, updated.Status)
	require.Equal(t, "twilio", updated.Provider)
	require.Equal(t, "SM123", updated.ProviderMsgId)
	require.Equal(t, "sent via twilio", updated.Detail)

	//untouched fields survive the partial update
	require.Equal(t, PHONE, updated.Phone)
	require.Equal(t, TEXT, updated.Text)
}

func TestMessageDao_UpdateDelivered(t *testing.T) {
	db, cleanup := prepareDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	deliveredAt := time.Now()
	updated, err := msgDao.UpdateDelivered(ID1, model.DELIVERED, deliveredAt)

	require.NoError(t, err)
	require.Equal(t, model.DELIVERED, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
}

func TestMessageDao_RemoveOlderThanDays(t *testing.T) {
	db, cleanup := prepareDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	err := msgDao.RemoveOlderThanDays(1)

	require.NoError(t, err)

	all, _ := msgDao.GetAll()
	require.Equal(t, 1, len(all))
}
