package model

import "time"

const (
	//message lifecycle statuses
	PENDING string = "PENDING"
	SENT           = "SENT"
	FAILED         = "FAILED"

	//post-send refinement reported by the winning gateway on re-poll
	DELIVERED = "DELIVERED"
)

const (
	//message categories
	CATEGORY_ORDER  string = "order_notification"
	CATEGORY_JOB           = "status_update"
	CATEGORY_CUSTOM        = "custom"

	//message priorities
	PRIORITY_NORMAL = "normal"
	PRIORITY_HIGH   = "high"
)

type Message struct {
	Id            uint32 `storm:"id,increment"`
	Ref           string `storm:"index"`
	Phone         string `storm:"index"`
	Text          string
	Category      string `storm:"index"`
	OrderId       string `storm:"index"`
	JobOrderId    string `storm:"index"`
	CustomerId    string `storm:"index"`
	RecipientName string
	SentBy        string
	Priority      string
	Status        string `storm:"index"`
	Provider      string
	ProviderMsgId string `storm:"index"`
	Detail        string
	SentAt        time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time `storm:"index"`
}
