package rest

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

//go:embed web/index.html
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

func (that *Server) gameHandler(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "gameHandler")

	snapshot, err := that.uGame.Snapshot()
	if errors.Is(err, apperror.ErrGameNotStarted) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Error("failed to write game", "error", err)
	}
}

func (that *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := indexTemplate.Execute(w, map[string]string{"SocketPort": that.socketPort}); err != nil {
		that.logger.Error("failed to render page", "error", err)
	}
}
