package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/metrics"
)

// Publisher hands events to a broker.  Publish must not block on the
// network; failures are reported but never undo the mutation.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, ev Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	return nil
}

// Events returns a copy of what has been published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

var (
	errQueueFull = errors.New("events: publish buffer full")
	errClosed    = errors.New("events: publisher closed")
)

// AMQPPublisher sends events to a durable queue from a single background
// goroutine holding one connection, reconnecting on failure.  Messages are
// marked persistent.
type AMQPPublisher struct {
	url   string
	queue string
	log   *zap.Logger

	mu     sync.Mutex
	closed bool
	buf    chan Event
	done   chan struct{}

	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher starts the sender goroutine.  Dialing happens lazily on
// the first event.
func NewAMQPPublisher(url, queue string, log *zap.Logger) *AMQPPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	p := &AMQPPublisher{
		url:   url,
		queue: queue,
		log:   log.Named("events"),
		buf:   make(chan Event, 256),
		done:  make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues ev.  It fails fast when the buffer is full.
func (p *AMQPPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errClosed
	}
	select {
	case p.buf <- ev:
		return nil
	default:
		metrics.RecordEvent(string(ev.Type), errQueueFull)
		p.log.Warn("event dropped", zap.String("type", string(ev.Type)), zap.String("id", ev.ID))
		return errQueueFull
	}
}

// Close flushes queued events and closes the connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.buf)
	p.mu.Unlock()
	<-p.done
	return p.reset()
}

func (p *AMQPPublisher) run() {
	defer close(p.done)
	for ev := range p.buf {
		err := p.send(ev)
		if err != nil {
			// one retry on a fresh connection
			_ = p.reset()
			err = p.send(ev)
		}
		metrics.RecordEvent(string(ev.Type), err)
		if err != nil {
			p.log.Error("publish failed", zap.String("type", string(ev.Type)), zap.Error(err))
			_ = p.reset()
			continue
		}
		p.log.Debug("event published", zap.String("type", string(ev.Type)), zap.String("id", ev.ID))
	}
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("dial: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel open: %w", err)
	}
	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}
	p.ch = ch
	return ch, nil
}

func (p *AMQPPublisher) send(ev Event) error {
	ch, err := p.channel()
	if err != nil {
		return err
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ID,
			Type:         string(ev.Type),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
}

func (p *AMQPPublisher) reset() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
		p.ch = nil
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
		p.conn = nil
	}
	return errors.Join(errs...)
}
