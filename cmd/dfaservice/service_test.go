package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/storage"
	. "github.com/Comcast/dfareader/util/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) (*Service, *httptest.Server) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	svc := NewService(NewLibrary(storage.NewMemStorage()))
	svc.Websockets = true
	server := httptest.NewServer(svc.Handler(ctx))
	t.Cleanup(server.Close)
	return svc, server
}

func do(t *testing.T, method, url, body string) (int, string) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	bs, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(bs)
}

func TestHTTP(t *testing.T) {
	svc, server := testService(t)
	base := server.URL + "/dfas"

	code, body := do(t, "GET", base, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)

	code, body = do(t, "PUT", base+"/ab", SubstringAB)
	require.Equal(t, http.StatusOK, code, body)

	code, body = do(t, "GET", base, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, Dwimjs(`["ab"]`), Dwimjs(body))

	// The name comes from the path.
	code, body = do(t, "GET", base+"/ab", "")
	require.Equal(t, http.StatusOK, code)
	desc, err := core.ParseDescription([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "ab", desc.Name)
	assert.Equal(t, 3, desc.States.Len())

	code, body = do(t, "POST", base+"/ab/eval", `{"inputs":["ab","ba","","ac"]}`)
	require.Equal(t, http.StatusOK, code, body)
	var er EvalResponse
	require.NoError(t, json.Unmarshal([]byte(body), &er))
	assert.Equal(t, "ab", er.DFA)
	assert.Equal(t, 1, er.Failures)
	require.Len(t, er.Results, 4)
	assert.True(t, er.Results[0].Accepted)
	assert.Equal(t, []core.State{"q0", "q1", "q2"}, er.Results[0].Path)
	assert.False(t, er.Results[1].Accepted)
	assert.Equal(t, []core.State{"q0"}, er.Results[2].Path)
	assert.Equal(t, "UndefinedTransition", er.Results[3].ErrorKind)
	assert.Equal(t, 1, svc.Lib.Cached())

	code, body = do(t, "GET", base+"/ab/dot?input=ab", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "digraph")
	assert.Contains(t, body, "red")

	// Replacing drops the cached DFA.
	changed := strings.Replace(SubstringAB, `"AcceptingStates": ["q2"]`, `"AcceptingStates": []`, 1)
	code, body = do(t, "PUT", base+"/ab", changed)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, 0, svc.Lib.Cached())
	code, body = do(t, "POST", base+"/ab/eval", `{"inputs":["ab"]}`)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(body), &er))
	assert.False(t, er.Results[0].Accepted)

	code, _ = do(t, "DELETE", base+"/ab", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, "GET", base+"/ab", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHTTPErrors(t *testing.T) {
	_, server := testService(t)
	base := server.URL + "/dfas"

	invalid := strings.Replace(SubstringAB, `"InitialState": "q0"`, `"InitialState": "q7"`, 1)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
		kind   string
	}{
		{"invalid", "PUT", "/bad", invalid, http.StatusBadRequest, "InvalidInitialState"},
		{"garbage", "PUT", "/bad", "{{{", http.StatusBadRequest, "other"},
		{"missing", "GET", "/nope", "", http.StatusNotFound, "NotFound"},
		{"remove missing", "DELETE", "/nope", "", http.StatusNotFound, "NotFound"},
		{"eval missing", "POST", "/nope/eval", `{"inputs":[]}`, http.StatusNotFound, "NotFound"},
		{"bad eval", "POST", "/nope/eval", `[`, http.StatusBadRequest, "other"},
		{"bad verb", "GET", "/nope/fly", "", http.StatusMethodNotAllowed, "other"},
		{"bad path", "GET", "/a/b/c", "", http.StatusNotFound, "other"},
		{"list method", "POST", "", "", http.StatusMethodNotAllowed, "other"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := do(t, tc.method, base+tc.path, tc.body)
			assert.Equal(t, tc.code, code, body)
			var eb ErrorBody
			require.NoError(t, json.Unmarshal([]byte(body), &eb))
			assert.Equal(t, tc.kind, eb.Kind)
			assert.NotEmpty(t, eb.Error)
		})
	}
}

func TestProcessJSON(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	require.NoError(t, svc.Lib.Put(ctx, core.SubstringABDescription()))

	tests := []struct {
		in   string
		want string
	}{
		{
			`{"id":"1","dfa":"substring-ab","input":"aab"}`,
			`{"id":"1","dfa":"substring-ab","input":"aab","accepted":true,"path":["q0","q1","q1","q2"]}`,
		},
		{
			`{"dfa":"substring-ab","input":"ba"}`,
			`{"dfa":"substring-ab","input":"ba","accepted":false,"path":["q0","q0","q1"]}`,
		},
		{
			`{"dfa":"substring-ab","input":"ac"}`,
			`{"dfa":"substring-ab","input":"ac","accepted":false,"errorKind":"UndefinedTransition",
			  "error":"either the state does not exist, or the symbol is not in the alphabet: state = \"q1\", symbol = \"c\""}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.JSONEq(t, tc.want, string(svc.ProcessJSON(ctx, []byte(tc.in))))
		})
	}

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(svc.ProcessJSON(ctx, []byte(`{"dfa":"nope","input":"x"}`)), &resp))
	assert.Equal(t, "NotFound", resp["errorKind"])

	require.NoError(t, json.Unmarshal(svc.ProcessJSON(ctx, []byte(`nope`)), &resp))
	assert.Equal(t, "BadRequest", resp["errorKind"])
}
