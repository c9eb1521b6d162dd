package dao

import (
	"github.com/polymertrack/sms-notifier/model"
)

type HealthDao interface {
	//GetOneByProvider returns the health record of the given provider
	GetOneByProvider(provider string) (model.ProviderHealth, error)
	//GetAll returns health records of all providers
	GetAll() ([]model.ProviderHealth, error)
	//Save inserts or updates the given health record
	Save(health *model.ProviderHealth) error
}

func NewHealthDao(db Db) HealthDao {
	return &healthDao{db: db}
}

type healthDao struct {
	db Db
}

func (d healthDao) GetOneByProvider(provider string) (health model.ProviderHealth, err error) {
	err = d.db.One("Provider", provider, &health)
	return
}

func (d healthDao) GetAll() (records []model.ProviderHealth, err error) {
	err = d.db.All(&records)
	return
}

func (d healthDao) Save(health *model.ProviderHealth) error {
	return d.db.Save(health)
}
