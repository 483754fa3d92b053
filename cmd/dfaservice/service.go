package main

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/storage"
	"github.com/Comcast/dfareader/tools"
	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/netutil"
)

// MaxBody limits the size of a request body.
var MaxBody int64 = 1 << 20

// Service is an HTTP face for a Library.
type Service struct {
	Lib *Library

	// Websockets enables "/ws".
	Websockets bool
}

func NewService(lib *Library) *Service {
	return &Service{
		Lib: lib,
	}
}

func complain(w http.ResponseWriter, err error, status int) {
	util.Logf("Service complaint %d %v", status, err)
	reply(w, &ErrorBody{
		Error: err.Error(),
		Kind:  kindOf(err),
	}, status)
}

func reply(w http.ResponseWriter, x interface{}, status int) {
	js, err := json.Marshal(x)
	if err != nil {
		status = http.StatusInternalServerError
		js = []byte(`{"error":"marshal failed"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(append(js, '\n')); err != nil {
		log.Printf("Service warning on Write(): %v", err)
	}
}

// statusOf maps an error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrNoName), tools.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func readBody(r *http.Request) ([]byte, error) {
	bs, err := ioutil.ReadAll(io.LimitReader(r.Body, MaxBody))
	if err != nil {
		return nil, err
	}
	if err := r.Body.Close(); err != nil {
		log.Printf("Service warning on Body.Close(): %v", err)
	}
	return bs, nil
}

// Handler returns the service's routes:
//
//	GET    /dfas              names
//	PUT    /dfas/NAME         store a description
//	GET    /dfas/NAME         the description
//	DELETE /dfas/NAME
//	POST   /dfas/NAME/eval    {"inputs":[...]}
//	GET    /dfas/NAME/dot     Graphviz
//	GET    /ws                websocket (if Websockets)
func (s *Service) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/dfas", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			complain(w, errors.Newf("%s not allowed", r.Method), http.StatusMethodNotAllowed)
			return
		}
		names, err := s.Lib.List(r.Context())
		if err != nil {
			complain(w, err, statusOf(err))
			return
		}
		if names == nil {
			names = []string{}
		}
		reply(w, names, http.StatusOK)
	})

	mux.HandleFunc("/dfas/", s.dfaHandler)

	if s.Websockets {
		mux.HandleFunc("/ws", s.websocketHandler(ctx))
	}

	return mux
}

func (s *Service) dfaHandler(w http.ResponseWriter, r *http.Request) {
	var (
		ctx   = r.Context()
		parts = strings.Split(strings.TrimPrefix(r.URL.Path, "/dfas/"), "/")
		name  = parts[0]
		verb  string
	)
	if name == "" || 2 < len(parts) {
		complain(w, errors.Newf("bad path %s", r.URL.Path), http.StatusNotFound)
		return
	}
	if len(parts) == 2 {
		verb = parts[1]
	}

	switch {
	case verb == "" && r.Method == http.MethodGet:
		desc, err := s.Lib.Description(ctx, name)
		if err != nil {
			complain(w, err, statusOf(err))
			return
		}
		reply(w, desc, http.StatusOK)

	case verb == "" && r.Method == http.MethodPut:
		bs, err := readBody(r)
		if err != nil {
			complain(w, err, http.StatusBadRequest)
			return
		}
		desc, err := core.ParseDescription(bs)
		if err != nil {
			complain(w, errors.Wrap(err, "parsing description"), http.StatusBadRequest)
			return
		}
		desc.Name = name
		if err = s.Lib.Put(ctx, desc); err != nil {
			complain(w, err, statusOf(err))
			return
		}
		util.Logf("Service stored %s", name)
		reply(w, map[string]string{"stored": name}, http.StatusOK)

	case verb == "" && r.Method == http.MethodDelete:
		if err := s.Lib.Remove(ctx, name); err != nil {
			complain(w, err, statusOf(err))
			return
		}
		reply(w, map[string]string{"removed": name}, http.StatusOK)

	case verb == "eval" && r.Method == http.MethodPost:
		bs, err := readBody(r)
		if err != nil {
			complain(w, err, http.StatusBadRequest)
			return
		}
		var req EvalRequest
		if err = json.Unmarshal(bs, &req); err != nil {
			complain(w, errors.Wrap(err, "bad request"), http.StatusBadRequest)
			return
		}
		rs, err := s.Lib.Evaluate(ctx, name, req.Inputs)
		if err != nil {
			complain(w, err, statusOf(err))
			return
		}
		reply(w, &EvalResponse{
			DFA:      name,
			Results:  rs,
			Failures: tools.Failures(rs),
		}, http.StatusOK)

	case verb == "dot" && r.Method == http.MethodGet:
		d, err := s.Lib.DFA(ctx, name)
		if err != nil {
			complain(w, err, statusOf(err))
			return
		}
		var path []core.State
		if input, given := r.URL.Query()["input"]; given {
			if e, err := d.Evaluate(input[0]); err == nil {
				path = e.Path
			}
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		if err = tools.Dot(d, nopCloser{w}, path); err != nil {
			log.Printf("Service dot error %v", err)
		}

	default:
		complain(w, errors.Newf("%s %s not supported", r.Method, r.URL.Path), http.StatusMethodNotAllowed)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// Serve listens on the address and serves until the context is done.
//
// If 0 < maxConns, at most that many connections are accepted at
// once.
func (s *Service) Serve(ctx context.Context, addr string, maxConns int) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", addr)
	}
	if 0 < maxConns {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return s.serve(ctx, ln)
}

func (s *Service) serve(ctx context.Context, ln net.Listener) error {
	log.Printf("Service starting on %s", ln.Addr())

	srv := &http.Server{
		Handler: s.Handler(ctx),
	}

	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			log.Printf("Service Close error %v", err)
		}
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
