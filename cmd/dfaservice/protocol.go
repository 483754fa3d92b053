package main

import (
	"context"
	"encoding/json"

	"github.com/Comcast/dfareader/storage"
	"github.com/Comcast/dfareader/tools"

	"github.com/cockroachdb/errors"
)

// Request asks for one evaluation.  Websocket and MQTT clients send
// these.
type Request struct {
	// Id is optional and is echoed in the Response.
	Id    string `json:"id,omitempty"`
	DFA   string `json:"dfa"`
	Input string `json:"input"`
}

// Response answers a Request.
type Response struct {
	Id  string `json:"id,omitempty"`
	DFA string `json:"dfa"`

	*tools.Result
}

// ErrorBody is what an HTTP request gets when something goes wrong.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// EvalRequest is the body of an HTTP evaluation request.
type EvalRequest struct {
	Inputs []string `json:"inputs"`
}

// EvalResponse is the answer to an EvalRequest.
type EvalResponse struct {
	DFA      string          `json:"dfa"`
	Results  []*tools.Result `json:"results"`
	Failures int             `json:"failures"`
}

// kindOf is tools.ErrorKind plus the errors that come from the
// service itself.
func kindOf(err error) string {
	if errors.Is(err, storage.ErrNotFound) {
		return "NotFound"
	}
	if errors.Is(err, storage.ErrNoName) {
		return "NoName"
	}
	return tools.ErrorKind(err)
}

// Process handles one Request.
func (s *Service) Process(ctx context.Context, req *Request) *Response {
	r := &Response{
		Id:  req.Id,
		DFA: req.DFA,
	}
	d, err := s.Lib.DFA(ctx, req.DFA)
	if err != nil {
		r.Result = &tools.Result{
			Input:     req.Input,
			Error:     err.Error(),
			ErrorKind: kindOf(err),
			Err:       err,
		}
		return r
	}
	r.Result = tools.Evaluate(d, req.Input)
	return r
}

// ProcessJSON is Process for a JSON Request.  The returned bytes are
// always a JSON Response, even when the Request can't be parsed.
func (s *Service) ProcessJSON(ctx context.Context, js []byte) []byte {
	var (
		req  Request
		resp *Response
	)
	if err := json.Unmarshal(js, &req); err != nil {
		resp = &Response{
			Result: &tools.Result{
				Error:     errors.Wrap(err, "bad request").Error(),
				ErrorKind: "BadRequest",
			},
		}
	} else {
		resp = s.Process(ctx, &req)
	}
	out, err := json.Marshal(resp)
	if err != nil {
		// A Response always marshals.
		panic(err)
	}
	return out
}
