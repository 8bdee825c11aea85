package telegram

import (
	"errors"
	"testing"

	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type senderMock struct {
	mock.Mock
}

func (m *senderMock) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	args := m.Called(to, what)
	msg, _ := args.Get(0).(*tele.Message)
	return msg, args.Error(1)
}

func TestSvc_SendMessage(t *testing.T) {
	sender := &senderMock{}
	sender.On("Send", tele.ChatID(42), "hello").Return(&tele.Message{ID: 1}, nil).Once()

	s := NewServiceWithSender(sender, 42)

	delivered, err := s.SendMessage("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", delivered)
	sender.AssertExpectations(t)
}

func TestSvc_SendMessage_Failed(t *testing.T) {
	sender := &senderMock{}
	sender.On("Send", tele.ChatID(42), "hello").Return(nil, tele.ErrChatNotFound).Once()

	s := NewServiceWithSender(sender, 42)

	delivered, err := s.SendMessage("hello")
	assert.Empty(t, delivered)
	require.ErrorIs(t, err, ierrors.ErrDelivery)
	assert.True(t, errors.Is(err, tele.ErrChatNotFound))
	assert.True(t, ierrors.IsExpected(err))

	var deliveryErr *ierrors.Error
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "hello", deliveryErr.Message)
	sender.AssertExpectations(t)
}
