// Package messaging publishes lifecycle events so other services can react
// to tasks and projects without polling the API.
package messaging

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectTaskCreated     = "workflowpro.task.created"
	SubjectProjectCreated  = "workflowpro.project.created"
	SubjectTeamMemberAdded = "workflowpro.team.member_added"
)

// Publisher wraps a NATS connection. With no NATS_URL configured it is a
// no-op, the same soft-disable behavior the cache and mailer use.
type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

func NewPublisher(natsURL string, logger *zap.Logger) *Publisher {
	p := &Publisher{logger: logger}
	if natsURL == "" {
		logger.Info("NATS_URL not set, event publishing disabled")
		return p
	}

	nc, err := nats.Connect(natsURL)
	if err != nil {
		logger.Warn("NATS unreachable, event publishing disabled", zap.Error(err))
		return p
	}

	logger.Info("connected to NATS", zap.String("url", natsURL))
	p.nc = nc
	return p
}

func (p *Publisher) Enabled() bool {
	return p.nc != nil && p.nc.IsConnected()
}

// Publish marshals the event payload and sends it on the subject. Publishing
// is best-effort: a failure is logged, never surfaced to the request path.
func (p *Publisher) Publish(subject string, payload interface{}) {
	if !p.Enabled() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal event", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("failed to publish event", zap.String("subject", subject), zap.Error(err))
		return
	}

	p.logger.Debug("event published", zap.String("subject", subject))
}

func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
