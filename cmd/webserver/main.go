package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Ivan-Ryukendo/FileXSorter/version"
	app "github.com/Ivan-Ryukendo/FileXSorter/web/run"
)

func main() {
	configPath := flag.String("config", "filexsorter.yaml", "Path to configuration file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	flag.Parse()

	webapp := app.WebApp{
		ConfigPath: *configPath,
	}
	webapp.ReloadConfiguration()

	addr := webapp.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting filexsorter %s server on %s", version.Version, addr)
	if err := http.ListenAndServe(addr, webapp.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
