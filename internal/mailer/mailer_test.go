package mailer

import (
	"bytes"
	"context"
	"testing"

	"langnghe/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestBuildWelcome(t *testing.T) {
	m := New(config.SMTP{From: "no-reply@langnghe.vn"})

	msg, err := m.buildWelcome("Lan", "lan@example.com")
	require.NoError(t, err)

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"lan@example.com"}, rcpts)
	assert.Equal(t, []string{welcomeSubject}, msg.GetGenHeader(mail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no-reply@langnghe.vn")
}

func TestBuildWelcome_InvalidAddress(t *testing.T) {
	m := New(config.SMTP{From: "no-reply@langnghe.vn"})

	_, err := m.buildWelcome("Lan", "not an address")
	assert.Error(t, err)
}

func TestSendWelcome_DisabledLogsOnly(t *testing.T) {
	m := New(config.SMTP{From: "no-reply@langnghe.vn"})
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendWelcome(context.Background(), "Lan", "lan@example.com"))
}
