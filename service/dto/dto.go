package dto

import "time"

type OrderNotification struct {
	OrderId       string `json:"orderId"`
	Phone         string `json:"phone"`
	Text          string `json:"text"`
	SentBy        string `json:"sentBy,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
	CustomerId    string `json:"customerId,omitempty"`
}

type JobOrderUpdate struct {
	JobOrderId    string `json:"jobOrderId"`
	Phone         string `json:"phone"`
	Text          string `json:"text"`
	SentBy        string `json:"sentBy,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
	CustomerId    string `json:"customerId,omitempty"`
}

type CustomMessage struct {
	Phone         string `json:"phone"`
	Text          string `json:"text"`
	SentBy        string `json:"sentBy,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
	Category      string `json:"category,omitempty"`
	Priority      string `json:"priority,omitempty"`
	CustomerId    string `json:"customerId,omitempty"`
	OrderId       string `json:"orderId,omitempty"`
	JobOrderId    string `json:"jobOrderId,omitempty"`
}

type MessageStatus struct {
	Id            uint32     `json:"id"`
	Ref           string     `json:"ref"`
	Phone         string     `json:"phone"`
	Text          string     `json:"text"`
	Category      string     `json:"category"`
	OrderId       string     `json:"orderId,omitempty"`
	JobOrderId    string     `json:"jobOrderId,omitempty"`
	CustomerId    string     `json:"customerId,omitempty"`
	RecipientName string     `json:"recipientName,omitempty"`
	SentBy        string     `json:"sentBy,omitempty"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Provider      string     `json:"provider,omitempty"`
	ProviderMsgId string     `json:"providerMsgId,omitempty"`
	Detail        string     `json:"detail,omitempty"`
	SentAt        time.Time  `json:"sentAt"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
}

type ProviderHealth struct {
	Provider            string     `json:"provider"`
	Status              string     `json:"status"`
	SuccessCount        int        `json:"successCount"`
	FailureCount        int        `json:"failureCount"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	LastSuccessAt       *time.Time `json:"lastSuccessAt,omitempty"`
	LastFailureAt       *time.Time `json:"lastFailureAt,omitempty"`
	LastError           string     `json:"lastError,omitempty"`
	CheckedAt           time.Time  `json:"checkedAt"`
}
