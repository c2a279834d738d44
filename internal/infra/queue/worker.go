package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier is the contract for whatever tells the intake team about a
// new lead (email today, could be chat later).
type LeadNotifier interface {
	SendNewLeadNotification(leadName, email, treatmentType, source string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it does not
				// wedge the queue; it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(payload); err != nil {
				log.Printf("[WORKER] notification failed for lead %s: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(payload LeadEventPayload) error {
	switch payload.Event {
	case EventLeadCreated:
		leadName := payload.FirstName + " " + payload.LastName
		return w.Notifier.SendNewLeadNotification(leadName, payload.Email, payload.TreatmentType, payload.Source)
	default:
		// Status changes are consumed for audit/metrics purposes only for
		// now; nothing to send.
		log.Printf("[WORKER] lead %s moved to status %q", payload.LeadID, payload.Status)
		return nil
	}
}
