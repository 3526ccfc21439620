package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageDryRun(t *testing.T) {
	// nil switch means dry run, no provider is touched.
	e := SendMessage(ProviderMailgun, nil, "a@example.com", []string{"b@example.com"}, "subject", "text", "<p>html</p>", nil)
	assert.Nil(t, e)

	off := false
	e = SendMessage(ProviderSES, &off, "a@example.com", []string{"b@example.com"}, "subject", "text", "", nil)
	assert.Nil(t, e)
}

func TestSendMessageUnknownProvider(t *testing.T) {
	on := true
	e := SendMessage(Provider("pigeon"), &on, "a@example.com", []string{"b@example.com"}, "subject", "text", "", nil)
	assert.NotNil(t, e)
}
