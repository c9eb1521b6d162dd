package provider

import (
	"context"
	"net/http"
	"time"
)

//Result is the normalized outcome of a single gateway call
type Result struct {
	Provider      string
	Success       bool
	ProviderMsgId string
	ErrorDetail   string
}

//DeliveryStatus is the gateway-reported state of an already submitted message
type DeliveryStatus struct {
	Status      string
	DeliveredAt *time.Time
}

//Provider translates a generic send request into one gateway's wire protocol.
//Send is total: transport errors, gateway rejections and missing credentials
//are all reported through Result, never propagated. Exactly one outbound call
//per invocation, no internal retries.
type Provider interface {
	Name() string
	Send(ctx context.Context, phone, text, ref string) Result
}

//StatusChecker is implemented by gateways that support re-polling a submitted message
type StatusChecker interface {
	CheckStatus(ctx context.Context, providerMsgId string) (DeliveryStatus, error)
}

//HttpClient abstracts http.Client for tests
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func failure(name, detail string) Result {
	return Result{Provider: name, ErrorDetail: detail}
}
