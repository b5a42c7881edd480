package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mikimas/truster/internal/config"
)

// Module exposes the notifier implementation to the fx graph.
var Module = fx.Provide(newNotifier)

type params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p params) Notifier {
	if p.Config.NotifierDisabled {
		p.Logger.Info("email notifier disabled, notifications go to the log")
		return NewLogNotifier(p.Logger)
	}
	return NewMailjetNotifier(
		p.Config.MailjetPublicKey,
		p.Config.MailjetSecretKey,
		p.Config.EmailSender,
		p.Config.EmailSenderName,
		p.Config.EmailReceiver,
		p.Logger,
	)
}
