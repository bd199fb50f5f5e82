package webapp

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/Ivan-Ryukendo/FileXSorter/app"
	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// WebApp exposes the scanner over a JSON API. A single scan runs at a
// time; its result is kept in a slot guarded by mu so handlers on other
// goroutines can read it safely.
type WebApp struct {
	AppConfig  *models.AppConfig
	Scanner    *app.Scanner
	HistoryDB  *sql.DB
	ConfigPath string

	mu         sync.Mutex
	running    bool
	lastResult *models.ScanResult
}

func (webapp *WebApp) ReloadConfiguration() {
	configPath := webapp.ConfigPath
	if configPath == "" {
		configPath = "filexsorter.yaml"
	}
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	webapp.AppConfig = cfg
	webapp.Scanner = app.NewScanner(cfg.Scan)

	if cfg.History.DBPath != "" {
		db, err := app.OpenHistory(cfg.History.DBPath)
		if err != nil {
			log.Printf("Scan history disabled: %v", err)
		} else {
			webapp.HistoryDB = db
		}
	}

	log.Printf("Configured roots: %v", cfg.RootPaths)
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}
