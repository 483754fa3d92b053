package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Comcast/dfareader/util"

	"github.com/gorilla/websocket"
)

// websocketHandler answers each Request message on a websocket with
// a Response message.
func (s *Service) websocketHandler(ctx context.Context) http.HandlerFunc {
	var upgrader = websocket.Upgrader{} // use default options

	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error", err)
			return
		}
		defer c.Close()

		id := c.RemoteAddr().String()
		util.Logf("websocket %s open", id)

		done := make(chan bool)
		defer close(done)

		go func() {
			select {
			case <-ctx.Done():
				c.Close()
			case <-done:
			}
		}()

		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Printf("websocket %s read error %v", id, err)
				}
				break
			}

			out := s.ProcessJSON(r.Context(), message)

			if err = c.WriteMessage(mt, out); err != nil {
				log.Printf("websocket %s write error %v", id, err)
				break
			}
		}

		util.Logf("websocket %s closed", id)
	}
}
