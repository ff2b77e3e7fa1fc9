package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// SendMessageToUser delivers an operator notice; failures are only logged
	SendMessageToUser(message string)
}
