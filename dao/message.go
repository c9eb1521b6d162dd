package dao

import (
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/polymertrack/sms-notifier/model"
)

type MessageDao interface {
	//Create persists a new pending message record and returns its id
	Create(msg *model.Message) (uint32, error)
	//GetOneById returns message by id
	GetOneById(id uint32) (model.Message, error)
	//GetAll returns all messages
	GetAll() ([]model.Message, error)
	//UpdateDelivery finalizes the send outcome of the message with the given id
	UpdateDelivery(id uint32, status, provider, providerMsgId, detail string) (model.Message, error)
	//UpdateDelivered sets the gateway-reported delivery state of the message with the given id
	UpdateDelivered(id uint32, status string, deliveredAt time.Time) (model.Message, error)
	//RemoveOlderThanDays removes all messages older than {days}
	RemoveOlderThanDays(days int) error
}

func NewMessageDao(db Db) MessageDao {
	return &messageDao{db: db}
}

type messageDao struct {
	db Db
}

func (d messageDao) Create(msg *model.Message) (uint32, error) {
	msg.Id = 0
	msg.Status = model.PENDING
	if msg.Priority == "" {
		msg.Priority = model.PRIORITY_NORMAL
	}
	msg.CreatedAt = time.Now()
	msg.SentAt = msg.CreatedAt
	err := d.db.Save(msg)
	return msg.Id, err
}

func (d messageDao) GetOneById(id uint32) (msg model.Message, err error) {
	err = d.db.One("Id", id, &msg)
	return
}

func (d messageDao) GetAll() (messages []model.Message, err error) {
	err = d.db.All(&messages)
	return
}

func (d messageDao) UpdateDelivery(id uint32, status, provider, providerMsgId, detail string) (model.Message, error) {
	var msg model.Message
	err := d.db.One("Id", id, &msg)
	if err != nil {
		return msg, err
	}
	msg.Status = status
	msg.Provider = provider
	msg.ProviderMsgId = providerMsgId
	msg.Detail = detail
	err = d.db.Update(&msg)
	return msg, err
}

func (d messageDao) UpdateDelivered(id uint32, status string, deliveredAt time.Time) (model.Message, error) {
	var msg model.Message
	err := d.db.One("Id", id, &msg)
	if err != nil {
		return msg, err
	}
	msg.Status = status
	msg.DeliveredAt = &deliveredAt
	err = d.db.Update(&msg)
	return msg, err
}

func (d messageDao) RemoveOlderThanDays(days int) error {
	err := d.db.Select(q.Lt("CreatedAt", time.Now().Add(-24*time.Duration(days)*time.Hour))).Delete(&model.Message{})
	if err != nil && err.Error() != "not found" {
		return err
	}
	return nil
}
