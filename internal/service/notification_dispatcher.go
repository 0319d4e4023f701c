package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// AppointmentNotifier receives appointment events after their change committed.
// Dispatch never blocks the caller and never fails the request.
type AppointmentNotifier interface {
	Dispatch(event entity.AppointmentEvent)
}

// EventPublisher delivers one event to the outside world
type EventPublisher interface {
	Publish(ctx context.Context, event entity.AppointmentEvent) error
}

// Dispatch results
const (
	notificationQueued  = "queued"
	notificationDropped = "dropped"
	notificationFailed  = "failed"
)

// NotificationDispatcher fans events out to a publisher from a bounded queue.
// A full queue drops the event.
type NotificationDispatcher struct {
	publisher EventPublisher
	log       *logrus.Logger
	metrics   *metrics.Metrics
	queue     chan entity.AppointmentEvent

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewNotificationDispatcher(publisher EventPublisher, buffer, workers int, log *logrus.Logger, m *metrics.Metrics) *NotificationDispatcher {
	d := &NotificationDispatcher{
		publisher: publisher,
		log:       log,
		metrics:   m,
		queue:     make(chan entity.AppointmentEvent, buffer),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *NotificationDispatcher) Dispatch(event entity.AppointmentEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.log.Warnf("Notification dispatcher stopped, dropping %s for appointment %s", event.Type, event.AppointmentID)
		d.metrics.ObserveNotification(notificationDropped)
		return
	}

	select {
	case d.queue <- event:
		d.metrics.ObserveNotification(notificationQueued)
	default:
		d.log.Warnf("Notification queue full, dropping %s for appointment %s", event.Type, event.AppointmentID)
		d.metrics.ObserveNotification(notificationDropped)
	}
}

// Stop rejects new events and waits until queued ones are published.
// Safe to call multiple times.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.log.Info("NotificationDispatcher stopped")
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()

	for event := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
		if err := d.publisher.Publish(ctx, event); err != nil {
			d.log.Warnf("Failed to publish %s for appointment %s: %+v", event.Type, event.AppointmentID, err)
			d.metrics.ObserveNotification(notificationFailed)
		}
		cancel()
	}
}

// =============================================================================
// Publishers
// =============================================================================

// RedisEventPublisher publishes events as JSON on a pub/sub channel for the
// mailer and SMS workers.
type RedisEventPublisher struct {
	redisClient *redis.Client
	channel     string
}

func NewRedisEventPublisher(redisClient *redis.Client, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: redisClient,
		channel:     channel,
	}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, event entity.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal appointment event: %w", err)
	}
	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

// LogEventPublisher writes events to the log. Used in development.
type LogEventPublisher struct {
	log *logrus.Logger
}

func NewLogEventPublisher(log *logrus.Logger) *LogEventPublisher {
	return &LogEventPublisher{log: log}
}

func (p *LogEventPublisher) Publish(ctx context.Context, event entity.AppointmentEvent) error {
	p.log.WithFields(logrus.Fields{
		"event":           event.Type,
		"appointment_id":  event.AppointmentID,
		"status":          event.Status,
		"previous_status": event.PreviousStatus,
		"date":            event.Date,
		"time":            event.Time,
	}).Info("Appointment event")
	return nil
}
