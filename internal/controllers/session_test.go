package controllers_test

import (
	"testing"

	"integrate/internal/controllers"

	"github.com/stretchr/testify/assert"
)

func Test_SessionHeaders(t *testing.T) {
	t.Run("without session key", func(t *testing.T) {
		session := controllers.NewSessionController("token-1", "secret-1")

		headers := session.Headers()
		assert.Equal(t, "token-1", headers["x-api-key"])
		assert.Equal(t, "secret-1", headers["x-api-secret"])

		_, ok := headers["Authorization"]
		assert.False(t, ok)
	})

	t.Run("with session key", func(t *testing.T) {
		session := controllers.NewSessionController("token-1", "secret-1")
		session.SetSessionKeys("uid-1", "act-1", "session-key-1", "ws-key-1")

		headers := session.Headers()
		assert.Equal(t, "token-1", headers["x-api-key"])
		assert.Equal(t, "secret-1", headers["x-api-secret"])
		assert.Equal(t, "session-key-1", headers["Authorization"])

		uid, actID, apiSessionKey, wsSessionKey := session.SessionKeys()
		assert.Equal(t, "uid-1", uid)
		assert.Equal(t, "act-1", actID)
		assert.Equal(t, "session-key-1", apiSessionKey)
		assert.Equal(t, "ws-key-1", wsSessionKey)
	})
}
