package messaging

// ConfigSender resolves the outgoing email sender from configuration.
type ConfigSender struct {
	From string
}

// DefaultSenderAddress returns the configured sender address, which may be
// empty when email is not configured.
func (s ConfigSender) DefaultSenderAddress() string {
	return s.From
}
