package service

import "github.com/rs/zerolog/log"

// Notifier surfaces a transient message to the user after a submission.
// Best-effort and non-blocking; callers never consume a result.
type Notifier interface {
	Notify(title, message string)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(title, message string) {
	log.Info().Str("title", title).Str("message", message).Msg("user_notification")
}
