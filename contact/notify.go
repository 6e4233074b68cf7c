package contact

// Notification is a one-shot toast shown after a submission.
type Notification struct {
	Title       string
	Description string
	// Variant is "default" for success and "destructive" for failure.
	Variant string
}

// Notifier presents notifications.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

var (
	SuccessNotification = Notification{
		Title:       "Mensagem enviada com sucesso",
		Description: "Obrigado por entrar em contato. Responderei o mais breve possível.",
		Variant:     "default",
	}
	FailureNotification = Notification{
		Title:       "Não foi possível enviar a mensagem",
		Description: "Ocorreu um erro ao enviar. Tente novamente em alguns instantes.",
		Variant:     "destructive",
	}
)
