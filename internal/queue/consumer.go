package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	consumerTag     = "booking-notifier"
	consumePrefetch = 50
	maxDialBackoff  = 30 * time.Second
)

// openQueueChannel opens a channel on conn and declares the durable
// booking queue on it.  Declaration is idempotent, so publisher and
// consumer can both call this without coordinating.
func openQueueChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare %s: %w", bookingQueueName, err)
	}
	return ch, nil
}

// StartBookingConsumer drains confirmed-booking events and appends one
// notification line per booking to logs/booking.log.  It owns its broker
// connection: dial failures and dropped connections are retried with
// capped backoff, and a message that cannot be handled is rejected
// without requeue so a poison payload cannot wedge the queue.
func StartBookingConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("booking-notifier: broker unreachable: %v (next attempt in %s)", err, backoff)
			time.Sleep(backoff)
			if backoff < maxDialBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = drainBookings(conn)
		_ = conn.Close()
		log.Printf("booking-notifier: consumer stopped: %v (reconnecting)", err)
		time.Sleep(2 * time.Second)
	}
}

// drainBookings consumes until the delivery stream closes, which signals
// a lost connection or a cancelled consumer.
func drainBookings(conn *amqp.Connection) error {
	ch, err := openQueueChannel(conn)
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumePrefetch, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	deliveries, err := ch.Consume(bookingQueueName, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", bookingQueueName, err)
	}

	for d := range deliveries {
		if err := recordConfirmation(d.Body); err != nil {
			log.Printf("booking-notifier: dropping message: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("delivery stream closed")
}

// recordConfirmation appends a single booking.log line for one event.
func recordConfirmation(body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	tickets := "[]"
	if len(ev.SeatLabels) > 0 {
		tickets = fmt.Sprintf("[%s]", strings.Join(ev.SeatLabels, ","))
	} else if ev.ZoneSummary != "" {
		tickets = ev.ZoneSummary
	}

	line := fmt.Sprintf("[%s] Booking confirmed | booking=%s | user_id=%d | title=%q | date=%s %s | total=%d | tickets=%s\n",
		ev.ConfirmedAt, ev.BookingReference, ev.UserID, ev.ItemTitle, ev.ShowDate, ev.ShowTime, ev.TotalAmount, tickets)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
