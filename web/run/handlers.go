package webapp

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Ivan-Ryukendo/FileXSorter/app"
	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// startScan launches one scan in the background. A second request while a
// scan is running is rejected rather than queued.
func (webapp *WebApp) startScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roots := webapp.AppConfig.RootPaths
		if len(roots) == 0 {
			writeError(w, http.StatusBadRequest, "no root paths configured")
			return
		}

		webapp.mu.Lock()
		if webapp.running {
			webapp.mu.Unlock()
			writeError(w, http.StatusConflict, "scan already running")
			return
		}
		webapp.running = true
		webapp.mu.Unlock()

		webapp.Scanner.Reset()

		go func() {
			start := time.Now()
			result, err := webapp.Scanner.Scan(roots)
			cancelled := webapp.Scanner.Cancelled()

			switch {
			case err != nil:
				log.Printf("Scan failed: %v", err)
			case cancelled:
				log.Printf("Scan cancelled after %v, partial result discarded", time.Since(start))
			default:
				log.Printf("Scan finished in %v: %d groups, %s wasted",
					time.Since(start), len(result.DuplicateGroups), models.FormatSize(result.WastedSpace))
				if webapp.HistoryDB != nil {
					if _, err := app.SaveScan(webapp.HistoryDB, roots, result, time.Since(start)); err != nil {
						log.Printf("Failed to save scan history: %v", err)
					}
				}
			}

			// Publish the result and release the running flag last, so a
			// client that sees running == false also sees the final state.
			webapp.mu.Lock()
			webapp.running = false
			if err == nil && !cancelled {
				webapp.lastResult = result
			}
			webapp.mu.Unlock()
		}()

		writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

func (webapp *WebApp) cancelScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.Scanner.Cancel()
		writeJSON(w, http.StatusOK, map[string]string{"status": "cancelling"})
	}
}

// progress reports the live hashing counters. Total stays zero while the
// scan is still collecting or filtering.
func (webapp *WebApp) progress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		processed, total := webapp.Scanner.Progress()

		webapp.mu.Lock()
		running := webapp.running
		webapp.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{
			"processed": processed,
			"total":     total,
			"running":   running,
		})
	}
}

func (webapp *WebApp) result() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.mu.Lock()
		result := webapp.lastResult
		webapp.mu.Unlock()

		if result == nil {
			writeError(w, http.StatusNotFound, "no completed scan")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (webapp *WebApp) history() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if webapp.HistoryDB == nil {
			writeError(w, http.StatusNotFound, "scan history disabled")
			return
		}

		limit := 30
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		entries, err := app.ScanHistory(webapp.HistoryDB, limit)
		if err != nil {
			log.Printf("Failed to read scan history: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to read scan history")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
