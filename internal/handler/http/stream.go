package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// streamVaultState pushes the vault state to a websocket client: the
// current state first, then every change. Bursts collapse to the latest
// state.
func (h *Handler) streamVaultState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// the upgrade hijacks the connection, so headers already set on w are
	// only sent if passed along here
	header := http.Header{}
	if traceID := w.Header().Get(traceIDHeader); traceID != "" {
		header.Set(traceIDHeader, traceID)
	}

	ws, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamVaultState").Msg("websocket upgrade failed")
		return
	}
	defer ws.Close()

	updates := make(chan models.VaultState, 1)
	unsubscribe := h.services.LockManager.VaultStateFlow().Subscribe(func(state models.VaultState) {
		for {
			select {
			case updates <- state:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	// the client never sends data; reading surfaces close frames and pongs
	ws.SetReadLimit(512)
	ws.SetReadDeadline(time.Now().Add(streamPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case state := <-updates:
			ws.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := ws.WriteJSON(newVaultStateResponse(state)); err != nil {
				log.Debug().Err(err).Msg("vault state stream closed")
				return
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
