package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wifihunt/internal/config"
)

const (
	defaultHost      = "0.0.0.0"
	defaultPort      = "8080"
	defaultAssetsDir = "web"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "wifihunt-web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	assetsDir := config.GetEnv("WEB_ASSETS_DIR", defaultAssetsDir)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "url", fmt.Sprintf("http://%s", addr), "assets", assetsDir)
	if err := http.ListenAndServe(addr, newHandler(htmlPage, sshHost, assetsDir, logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newHandler serves the game page at / and the wasm build from assetsDir
// under /assets/.
func newHandler(page, sshHost, assetsDir string, logger *log.Logger) http.Handler {
	page = strings.ReplaceAll(page, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		mux.ServeHTTP(w, r)
	})
}
