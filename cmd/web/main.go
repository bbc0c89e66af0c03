package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/bulletdodge/internal/config"
	"github.com/tomz197/bulletdodge/internal/game"
	"github.com/tomz197/bulletdodge/internal/store"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	best := store.Open(config.ScoreFile()).Entry(store.DefaultKey)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, renderPage(sshHost, best))
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the landing page placeholders.
// An unreadable score file shows as no best score yet.
func renderPage(sshHost string, scores game.ScoreStore) string {
	bestText := "no runs yet"
	if b, err := scores.Best(); err == nil && b > 0 {
		bestText = game.FormatSeconds(b)
	}
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	return strings.ReplaceAll(page, "{{.Best}}", bestText)
}
