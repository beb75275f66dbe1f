package queue

import "context"

// Sender publishes a JSON body to a named queue.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
	QueueURL(ctx context.Context, queueName string) (string, error)
}
