package mail

import "go.uber.org/zap"

// Console logs messages instead of sending them.
type Console struct {
	Logger *zap.Logger
}

var _ Service = (*Console)(nil)

func (c *Console) Send(msg Message) error {
	c.Logger.Info("email (console backend)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.TextBody),
	)
	return nil
}
