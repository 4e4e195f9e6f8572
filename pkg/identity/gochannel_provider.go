package identity

import (
	"context"
	"encoding/json"

	"jf-travels-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const authStateTopic = "AUTH_STATE_CHANGED"

type authStateMessage struct {
	Present  bool   `json:"present"`
	Identity string `json:"identity,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GoChannelProvider delivers auth-state notifications over an in-process
// watermill topic. Sign-in and sign-out publish; each subscriber gets its own
// consumer loop.
type GoChannelProvider struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewGoChannelProvider(sysLogger logger.ILogger) *GoChannelProvider {
	return &GoChannelProvider{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NopLogger{},
		),
		logger: sysLogger,
	}
}

func (p *GoChannelProvider) Subscribe(onChange func(user *UserRecord)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	messages, err := p.pubSub.Subscribe(ctx, authStateTopic)
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		for msg := range messages {
			p.deliver(msg, onChange)
		}
	}()

	return cancel, nil
}

func (p *GoChannelProvider) deliver(msg *message.Message, onChange func(user *UserRecord)) {
	// Invalid payloads are acked and dropped so they cannot wedge the loop.
	defer msg.Ack()

	var state authStateMessage
	if err := json.Unmarshal(msg.Payload, &state); err != nil {
		p.logger.Error("Identity", "Failed to unmarshal auth state", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if !state.Present {
		onChange(nil)
		return
	}
	onChange(&UserRecord{Identity: state.Identity, Email: state.Email})
}

func (p *GoChannelProvider) SignIn(user *UserRecord) error {
	return p.publish(authStateMessage{
		Present:  true,
		Identity: user.Identity,
		Email:    user.Email,
	})
}

func (p *GoChannelProvider) SignOut(ctx context.Context) error {
	return p.publish(authStateMessage{Present: false})
}

func (p *GoChannelProvider) publish(state authStateMessage) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.pubSub.Publish(authStateTopic, msg)
}

// Close tears the bus down; outstanding subscriber channels are closed.
func (p *GoChannelProvider) Close() error {
	return p.pubSub.Close()
}
