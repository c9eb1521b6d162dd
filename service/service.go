package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/cskr/pubsub"
	"github.com/dchest/uniuri"
	"github.com/polymertrack/sms-notifier/dao"
	"github.com/polymertrack/sms-notifier/health"
	"github.com/polymertrack/sms-notifier/model"
	"github.com/polymertrack/sms-notifier/provider"
	"github.com/polymertrack/sms-notifier/service/dto"
	"github.com/polymertrack/sms-notifier/util"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	//EVENTS is the pubsub topic carrying message status transitions
	EVENTS = "events"

	refLen = 16
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

//Service is the only boundary the rest of the ERP calls for outbound SMS.
//Delivery outcomes are returned as values: callers inspect MessageStatus.Status,
//a total failure of both gateways is not an error.
type Service interface {
	SendOrderNotification(req dto.OrderNotification) (dto.MessageStatus, error)
	SendJobOrderUpdate(req dto.JobOrderUpdate) (dto.MessageStatus, error)
	SendCustomMessage(req dto.CustomMessage) (dto.MessageStatus, error)
	CheckMessageStatus(id uint32) (dto.MessageStatus, error)
	Messages() ([]dto.MessageStatus, error)
	ProviderHealth() ([]dto.ProviderHealth, error)
}

type service struct {
	primary         provider.Provider
	secondary       provider.Provider
	tracker         health.Tracker
	messageDao      dao.MessageDao
	ps              *pubsub.PubSub
	events          chan interface{}
	limiter         *rate.Limiter
	httpClient      *http.Client
	statusStoreDays int
	messageMaxLen   int
	webhook         string
	phoneRx         *regexp.Regexp
}

func NewService(primary, secondary provider.Provider, tracker health.Tracker, messageDao dao.MessageDao,
	statusStoreDays, messageMaxLen, trxPerSec int, webhook, phoneMask string) Service {

	limit := rate.Inf
	if trxPerSec > 0 {
		limit = rate.Limit(trxPerSec)
	}
	ps := pubsub.New(100)
	service := &service{
		primary:         primary,
		secondary:       secondary,
		tracker:         tracker,
		messageDao:      messageDao,
		ps:              ps,
		events:          ps.Sub(EVENTS),
		limiter:         rate.NewLimiter(limit, trxPerSec+1),
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		statusStoreDays: statusStoreDays,
		messageMaxLen:   messageMaxLen,
		webhook:         webhook,
		phoneRx:         regexp.MustCompile(phoneMask),
	}

	go service.CleanupDb()
	go service.NotifyWebhook()

	return service
}

func (s *service) CleanupDb() {
	for {
		err := s.messageDao.RemoveOlderThanDays(s.statusStoreDays)
		if err != nil {
			zap.L().Warn("Error cleaning up messages", zap.Error(err))
		}
		time.Sleep(time.Hour)
	}
}

//NotifyWebhook posts every message status transition to the configured web hook
func (s *service) NotifyWebhook() {
	for val := range s.events {
		if util.IsBlank(s.webhook) {
			continue
		}
		msg, ok := val.(model.Message)
		if !ok {
			continue
		}

		body, err := json.Marshal(toMessageDto(msg))
		if err != nil {
			zap.L().Error("Error marshalling webhook payload", zap.Error(err))
			continue
		}

		req, err := http.NewRequest("POST", s.webhook, bytes.NewBuffer(body))
		if err != nil {
			zap.L().Error("Error calling web hook", zap.Error(err))
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			zap.L().Error("Error calling web hook", zap.Error(err))
			continue
		}
		resp.Body.Close()

		if !(resp.StatusCode >= 200 && resp.StatusCode <= 202) {
			zap.L().Warn("Webhook returned unexpected status", zap.String("status", resp.Status))
		}
	}
}

func (s *service) SendOrderNotification(req dto.OrderNotification) (dto.MessageStatus, error) {
	if util.IsBlank(req.OrderId) {
		return dto.MessageStatus{}, NewInvalidPayloadError("Missing order id")
	}
	return s.deliver(model.Message{
		Phone:         req.Phone,
		Text:          req.Text,
		Category:      model.CATEGORY_ORDER,
		OrderId:       req.OrderId,
		CustomerId:    req.CustomerId,
		RecipientName: req.RecipientName,
		SentBy:        req.SentBy,
	})
}

func (s *service) SendJobOrderUpdate(req dto.JobOrderUpdate) (dto.MessageStatus, error) {
	if util.IsBlank(req.JobOrderId) {
		return dto.MessageStatus{}, NewInvalidPayloadError("Missing job order id")
	}
	return s.deliver(model.Message{
		Phone:         req.Phone,
		Text:          req.Text,
		Category:      model.CATEGORY_JOB,
		JobOrderId:    req.JobOrderId,
		CustomerId:    req.CustomerId,
		RecipientName: req.RecipientName,
		SentBy:        req.SentBy,
	})
}

func (s *service) SendCustomMessage(req dto.CustomMessage) (dto.MessageStatus, error) {
	category := req.Category
	if util.IsBlank(category) {
		category = model.CATEGORY_CUSTOM
	}
	return s.deliver(model.Message{
		Phone:         req.Phone,
		Text:          req.Text,
		Category:      category,
		Priority:      req.Priority,
		OrderId:       req.OrderId,
		JobOrderId:    req.JobOrderId,
		CustomerId:    req.CustomerId,
		RecipientName: req.RecipientName,
		SentBy:        req.SentBy,
	})
}

//deliver runs the failover sequence: persist pending, try primary, on failure
//try secondary, finalize the record exactly once. Attempts are strictly
//sequential, the secondary is never tried when the primary succeeded.
func (s *service) deliver(msg model.Message) (dto.MessageStatus, error) {

	//overall message validation
	if util.IsBlank(msg.Text) || util.IsBlank(msg.Phone) {
		return dto.MessageStatus{}, NewInvalidPayloadError("Invalid message ")
	}

	//check phone format
	if !s.phoneRx.MatchString(msg.Phone) {
		return dto.MessageStatus{}, NewInvalidPayloadError("Invalid phone " + msg.Phone)
	}

	//check max length of sms
	if len([]rune(msg.Text)) > s.messageMaxLen {
		return dto.MessageStatus{}, NewInvalidPayloadError("Message too long. Must be <= " + strconv.Itoa(s.messageMaxLen) + " symbols in length")
	}

	msg.Ref = uniuri.NewLen(refLen)

	//the pending record exists before any gateway is tried, so even a total
	//failure leaves a trace; only this create error propagates to the caller
	id, err := s.messageDao.Create(&msg)
	if err != nil {
		return dto.MessageStatus{}, err
	}
	msg.Id = id

	ctx := context.Background()
	if err := s.limiter.Wait(ctx); err != nil {
		zap.L().Warn("Error awaiting send slot", zap.Error(err))
	}

	winner := s.primary.Send(ctx, msg.Phone, msg.Text, msg.Ref)
	s.trackOutcome(winner)

	var diagnostic string
	if !winner.Success {
		primaryErr := winner.ErrorDetail
		winner = s.secondary.Send(ctx, msg.Phone, msg.Text, msg.Ref)
		s.trackOutcome(winner)
		if !winner.Success {
			diagnostic = primaryErr + "; " + winner.ErrorDetail
		}
	}

	var updated model.Message
	if winner.Success {
		updated, err = s.messageDao.UpdateDelivery(msg.Id, model.SENT, winner.Provider, winner.ProviderMsgId, "sent via "+winner.Provider)
	} else {
		updated, err = s.messageDao.UpdateDelivery(msg.Id, model.FAILED, "", "", diagnostic)
	}
	if err != nil {
		//best effort: report the computed outcome even though the final write failed
		zap.L().Error("Error finalizing message", zap.Uint32("id", msg.Id), zap.Error(err))
		updated = msg
		if winner.Success {
			updated.Status = model.SENT
			updated.Provider = winner.Provider
			updated.ProviderMsgId = winner.ProviderMsgId
			updated.Detail = "sent via " + winner.Provider
		} else {
			updated.Status = model.FAILED
			updated.Detail = diagnostic
		}
	}

	s.ps.Pub(updated, EVENTS)

	return toMessageDto(updated), nil
}

func (s *service) trackOutcome(res provider.Result) {
	if res.Success {
		s.tracker.RecordSuccess(res.Provider)
	} else {
		s.tracker.RecordFailure(res.Provider, res.ErrorDetail)
	}
}

//CheckMessageStatus returns the stored message, re-polling the winning
//gateway for a delivery receipt when it supports status lookup
func (s *service) CheckMessageStatus(id uint32) (dto.MessageStatus, error) {
	msg, err := s.messageDao.GetOneById(id)
	if err != nil {
		return dto.MessageStatus{}, err
	}

	if msg.Status != model.SENT || util.IsBlank(msg.ProviderMsgId) {
		return toMessageDto(msg), nil
	}

	checker := s.statusChecker(msg.Provider)
	if checker == nil {
		return toMessageDto(msg), nil
	}

	state, err := checker.CheckStatus(context.Background(), msg.ProviderMsgId)
	if err != nil {
		//re-poll is best effort, the stored record stays authoritative
		zap.L().Warn("Error re-polling delivery status", zap.Uint32("id", id), zap.Error(err))
		return toMessageDto(msg), nil
	}
	if util.IsBlank(state.Status) || state.Status == msg.Status {
		return toMessageDto(msg), nil
	}

	deliveredAt := time.Now()
	if state.DeliveredAt != nil {
		deliveredAt = *state.DeliveredAt
	}
	updated, err := s.messageDao.UpdateDelivered(id, state.Status, deliveredAt)
	if err != nil {
		zap.L().Error("Error updating delivery status", zap.Uint32("id", id), zap.Error(err))
		return toMessageDto(msg), nil
	}

	s.ps.Pub(updated, EVENTS)

	return toMessageDto(updated), nil
}

func (s *service) Messages() ([]dto.MessageStatus, error) {
	messages, err := s.messageDao.GetAll()
	if err != nil {
		return nil, err
	}
	statuses := []dto.MessageStatus{}
	for _, msg := range messages {
		statuses = append(statuses, toMessageDto(msg))
	}
	return statuses, nil
}

func (s *service) ProviderHealth() ([]dto.ProviderHealth, error) {
	records, err := s.tracker.All()
	if err != nil {
		return nil, err
	}
	statuses := []dto.ProviderHealth{}
	for _, record := range records {
		statuses = append(statuses, toHealthDto(record))
	}
	return statuses, nil
}

func (s *service) statusChecker(name string) provider.StatusChecker {
	for _, p := range []provider.Provider{s.primary, s.secondary} {
		if p.Name() == name {
			if checker, ok := p.(provider.StatusChecker); ok {
				return checker
			}
			return nil
		}
	}
	return nil
}

func toMessageDto(msg model.Message) dto.MessageStatus {
	return dto.MessageStatus{
		Id:            msg.Id,
		Ref:           msg.Ref,
		Phone:         msg.Phone,
		Text:          msg.Text,
		Category:      msg.Category,
		OrderId:       msg.OrderId,
		JobOrderId:    msg.JobOrderId,
		CustomerId:    msg.CustomerId,
		RecipientName: msg.RecipientName,
		SentBy:        msg.SentBy,
		Priority:      msg.Priority,
		Status:        msg.Status,
		Provider:      msg.Provider,
		ProviderMsgId: msg.ProviderMsgId,
		Detail:        msg.Detail,
		SentAt:        msg.SentAt,
		DeliveredAt:   msg.DeliveredAt,
	}
}

func toHealthDto(record model.ProviderHealth) dto.ProviderHealth {
	return dto.ProviderHealth{
		Provider:            record.Provider,
		Status:              record.Status,
		SuccessCount:        record.SuccessCount,
		FailureCount:        record.FailureCount,
		ConsecutiveFailures: record.ConsecutiveFailures,
		LastSuccessAt:       record.LastSuccessAt,
		LastFailureAt:       record.LastFailureAt,
		LastError:           record.LastError,
		CheckedAt:           record.CheckedAt,
	}
}
