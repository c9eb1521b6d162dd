package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/polymertrack/sms-notifier/model"
	"github.com/polymertrack/sms-notifier/util"
	"go.uber.org/zap"
)

const (
	twilioName    = "twilio"
	twilioBaseUrl = "https://api.twilio.com"
)

type TwilioConfig struct {
	AccountSid string
	AuthToken  string
	FromNumber string
	//BaseUrl overrides the API host, used in tests
	BaseUrl string
}

//Twilio is the secondary gateway adapter, spoken over Twilio's REST API
type Twilio struct {
	cfg    TwilioConfig
	client HttpClient
	logger *zap.Logger
}

func NewTwilio(cfg TwilioConfig, client HttpClient, logger *zap.Logger) *Twilio {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = twilioBaseUrl
	}
	cfg.BaseUrl = strings.TrimRight(cfg.BaseUrl, "/")
	return &Twilio{cfg: cfg, client: client, logger: logger.With(zap.String("provider", twilioName))}
}

func (p *Twilio) Name() string {
	return twilioName
}

type twilioMessage struct {
	Sid         string `json:"sid"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	DateUpdated string `json:"date_updated"`
}

func (p *Twilio) configured() bool {
	return !util.IsBlank(p.cfg.AccountSid) && !util.IsBlank(p.cfg.AuthToken) && !util.IsBlank(p.cfg.FromNumber)
}

func (p *Twilio) Send(ctx context.Context, phone, text, ref string) Result {
	if !p.configured() {
		return failure(twilioName, "twilio: not configured (missing account sid, auth token or from number)")
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", p.cfg.FromNumber)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.cfg.BaseUrl, p.cfg.AccountSid)
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(twilioName, "twilio: "+err.Error())
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.cfg.AccountSid, p.cfg.AuthToken)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Gateway call failed", zap.Error(err))
		return failure(twilioName, "twilio: "+err.Error())
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return failure(twilioName, fmt.Sprintf("twilio: http %d, unreadable body: %v", resp.StatusCode, err))
	}

	var msg twilioMessage
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := fmt.Sprintf("twilio: http %d", resp.StatusCode)
		if json.Unmarshal(respBody, &msg) == nil && !util.IsBlank(msg.Message) {
			detail = fmt.Sprintf("twilio: http %d: %s", resp.StatusCode, msg.Message)
		}
		p.logger.Warn("Gateway rejected message", zap.Int("code", resp.StatusCode))
		return failure(twilioName, detail)
	}

	if err := json.Unmarshal(respBody, &msg); err != nil {
		return failure(twilioName, "twilio: unparseable response: "+err.Error())
	}
	if util.IsBlank(msg.Sid) {
		return failure(twilioName, "twilio: response carries no message sid")
	}

	p.logger.Info("Message submitted", zap.String("sid", msg.Sid))
	return Result{Provider: twilioName, Success: true, ProviderMsgId: msg.Sid}
}

//CheckStatus re-polls the message resource. Only a gateway-confirmed delivery
//is reported back, other states leave the stored status untouched.
func (p *Twilio) CheckStatus(ctx context.Context, providerMsgId string) (DeliveryStatus, error) {
	if !p.configured() {
		return DeliveryStatus{}, fmt.Errorf("twilio: not configured")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages/%s.json", p.cfg.BaseUrl, p.cfg.AccountSid, providerMsgId)
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return DeliveryStatus{}, err
	}
	req = req.WithContext(ctx)
	req.SetBasicAuth(p.cfg.AccountSid, p.cfg.AuthToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return DeliveryStatus{}, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return DeliveryStatus{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return DeliveryStatus{}, fmt.Errorf("twilio: status lookup http %d", resp.StatusCode)
	}

	var msg twilioMessage
	if err := json.Unmarshal(respBody, &msg); err != nil {
		return DeliveryStatus{}, err
	}

	if msg.Status != "delivered" {
		return DeliveryStatus{}, nil
	}

	deliveredAt := time.Now()
	if t, err := time.Parse(time.RFC1123Z, msg.DateUpdated); err == nil {
		deliveredAt = t
	}
	return DeliveryStatus{Status: model.DELIVERED, DeliveredAt: &deliveredAt}, nil
}
