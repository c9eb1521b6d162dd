package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/polymertrack/sms-notifier/util"
	"go.uber.org/zap"
)

const smslineName = "smsline"

type SmslineConfig struct {
	ApiUrl   string
	ApiKey   string
	SenderId string
}

//Smsline is the primary gateway adapter, a plain REST JSON interface
type Smsline struct {
	cfg    SmslineConfig
	client HttpClient
	logger *zap.Logger
}

func NewSmsline(cfg SmslineConfig, client HttpClient, logger *zap.Logger) *Smsline {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Smsline{cfg: cfg, client: client, logger: logger.With(zap.String("provider", smslineName))}
}

func (p *Smsline) Name() string {
	return smslineName
}

type smslineRequest struct {
	Sender     string   `json:"sender"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
	Reference  string   `json:"reference,omitempty"`
}

type smslineResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	MessageId string `json:"message_id"`
}

func (p *Smsline) Send(ctx context.Context, phone, text, ref string) Result {
	if util.IsBlank(p.cfg.ApiUrl) || util.IsBlank(p.cfg.ApiKey) || util.IsBlank(p.cfg.SenderId) {
		return failure(smslineName, "smsline: not configured (missing api url, api key or sender id)")
	}

	reqBody, err := json.Marshal(smslineRequest{
		Sender:     p.cfg.SenderId,
		Body:       text,
		Recipients: []string{phone},
		Reference:  ref,
	})
	if err != nil {
		return failure(smslineName, "smsline: "+err.Error())
	}

	req, err := http.NewRequest("POST", p.cfg.ApiUrl, bytes.NewBuffer(reqBody))
	if err != nil {
		return failure(smslineName, "smsline: "+err.Error())
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.ApiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Gateway call failed", zap.Error(err))
		return failure(smslineName, "smsline: "+err.Error())
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return failure(smslineName, fmt.Sprintf("smsline: http %d, unreadable body: %v", resp.StatusCode, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := fmt.Sprintf("smsline: http %d", resp.StatusCode)
		var gwErr smslineResponse
		if json.Unmarshal(respBody, &gwErr) == nil && !util.IsBlank(gwErr.Message) {
			detail = fmt.Sprintf("smsline: http %d: %s", resp.StatusCode, gwErr.Message)
		}
		p.logger.Warn("Gateway rejected message", zap.Int("code", resp.StatusCode))
		return failure(smslineName, detail)
	}

	var gwResp smslineResponse
	if err := json.Unmarshal(respBody, &gwResp); err != nil {
		return failure(smslineName, "smsline: unparseable response: "+err.Error())
	}
	if gwResp.Status != 0 {
		return failure(smslineName, fmt.Sprintf("smsline: gateway status %d: %s", gwResp.Status, gwResp.Message))
	}

	p.logger.Info("Message submitted", zap.String("messageId", gwResp.MessageId))
	return Result{Provider: smslineName, Success: true, ProviderMsgId: gwResp.MessageId}
}
