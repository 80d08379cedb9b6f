package server

import (
	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"net/http"
)

// websocketHandler serves /ws/{encoder}. Every binary message is answered with its encoded
// text; every text message is answered with the decoded bytes. A text message which cannot
// be decoded closes the connection with status 1007 (invalid frame payload data).
func (ws *HttpServer) websocketHandler() http.HandlerFunc {
	var upgrader = websocket.Upgrader{
		EnableCompression: ws.EnableCompression,
	} // use default options

	return func(w http.ResponseWriter, r *http.Request) {
		e, err := ws.findEncoder(chi.URLParam(r, "encoder"))
		if err != nil {
			writeError(w, err)
			return
		}

		log.Debugf("New websocket client for %v...", e.Name())
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			log.WithError(err).Errorf("Socket upgrade failed: %+v", err)
			return
		}
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Debugf("Failed closing the websocket connection: %v", err)
			}
		}()

		limit := ws.MaxBodySize
		if limit <= 0 {
			limit = DefaultMaxBodySize
		}
		c.SetReadLimit(limit)

		for {
			messageType, message, err := c.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.WithError(err).Debugf("Websocket read failed: %v", err)
				}
				return
			}

			switch messageType {
			case websocket.BinaryMessage:
				err = c.WriteMessage(websocket.TextMessage, []byte(e.Encode(message)))
			case websocket.TextMessage:
				data, decodeErr := e.Decode(string(message))
				if decodeErr != nil {
					closeMessage := websocket.FormatCloseMessage(websocket.CloseInvalidFramePayloadData, truncateReason(decodeErr.Error()))
					if err := c.WriteMessage(websocket.CloseMessage, closeMessage); err != nil {
						log.WithError(err).Debugf("Could not send close message: %v", err)
					}
					return
				}
				err = c.WriteMessage(websocket.BinaryMessage, data)
			}

			if err != nil {
				log.WithError(err).Debugf("Websocket write failed: %v", err)
				return
			}
		}
	}
}

// truncateReason keeps the close reason within the 123 bytes a control frame allows
func truncateReason(reason string) string {
	if len(reason) > 123 {
		return reason[:123]
	}
	return reason
}
