package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Comcast/dfareader/core"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocket(t *testing.T) {
	svc, server := testService(t)
	require.NoError(t, svc.Lib.Put(context.Background(), core.ParityDescription()))

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()

	for i, tc := range []struct {
		input    string
		accepted bool
		kind     string
	}{
		{"0110", true, ""},
		{"1", false, ""},
		{"12", false, "UndefinedTransition"},
		{"", true, ""},
	} {
		req := &Request{Id: string(rune('a' + i)), DFA: "even-ones", Input: tc.input}
		require.NoError(t, c.WriteJSON(req))

		var resp Response
		require.NoError(t, c.ReadJSON(&resp))
		assert.Equal(t, req.Id, resp.Id)
		assert.Equal(t, "even-ones", resp.DFA)
		require.NotNil(t, resp.Result)
		assert.Equal(t, tc.input, resp.Input)
		assert.Equal(t, tc.accepted, resp.Accepted, tc.input)
		assert.Equal(t, tc.kind, resp.ErrorKind, tc.input)
	}

	// Garbage gets an answer too.
	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("{")))
	_, bs, err := c.ReadMessage()
	require.NoError(t, err)
	var x map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &x))
	assert.Equal(t, "BadRequest", x["errorKind"])
}
