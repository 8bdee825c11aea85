package service

type Telegram interface {
	SendMessage(message string) (string, error)
}
