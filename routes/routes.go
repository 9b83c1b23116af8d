package routes

import (
	"net/http"
	"strings"

	"freightdash/handlers"
	"freightdash/logging"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Deps bundles every handler so SetupRoutes stays a single call in main.
type Deps struct {
	User     *handlers.UserHandler
	Shipment *handlers.ShipmentHandler
	View     *handlers.ViewHandler
	Preset   *handlers.PresetHandler
	Column   *handlers.ColumnHandler
	Upload   *handlers.UploadHandler
	Export   *handlers.ExportHandler
	Document *handlers.DocumentHandler
	Tracking *handlers.TrackingHandler
	Map      *handlers.MapHandler

	JWTSecret string
}

func SetupRoutes(d Deps) {
	wrap := func(h http.HandlerFunc) http.Handler {
		return withCORS(logging.RequestLogger(http.HandlerFunc(handlers.RecoverWrapper(h))))
	}
	guarded := func(h http.HandlerFunc) http.Handler {
		return wrap(handlers.RequireAuth(d.JWTSecret, h))
	}

	// Auth routes
	http.Handle("/signup", wrap(d.User.Signup))
	http.Handle("/login", wrap(d.User.Login))

	// Shipment collection routes
	http.Handle("/shipments", guarded(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			d.Shipment.ListShipments(w, r)
		case http.MethodPost:
			d.Shipment.CreateShipment(w, r)
		case http.MethodDelete:
			d.Shipment.DeleteShipment(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/shipments/view", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.View.ComposeView(w, r)
	}))

	http.Handle("/shipments/bulk", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Shipment.BulkAction(w, r)
	}))

	http.Handle("/shipments/upload", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Upload.UploadShipments(w, r)
	}))

	http.Handle("/shipments/upload/mappings", guarded(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			d.Upload.ListMappingPresets(w, r)
		case http.MethodPost:
			d.Upload.SaveMappingPreset(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/shipments/export", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Export.ExportShipments(w, r)
	}))

	// Shipment item routes: /shipments/{id}, /shipments/{id}/documents,
	// /shipments/{id}/documents/bol.pdf, /shipments/{id}/tracking
	http.Handle("/shipments/", guarded(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/shipments/")
		parts := strings.Split(rest, "/")
		id := parts[0]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch {
		case len(parts) == 1:
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			d.Shipment.GetShipmentByID(w, r, id)
		case len(parts) == 2 && parts[1] == "documents":
			switch r.Method {
			case http.MethodPost:
				d.Document.UploadDocument(w, r, id)
			case http.MethodDelete:
				d.Document.DeleteDocument(w, r, id)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case len(parts) == 3 && parts[1] == "documents" && parts[2] == "bol.pdf":
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			d.Document.GenerateBOL(w, r, id)
		case len(parts) == 2 && parts[1] == "tracking":
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			d.Tracking.GetTracking(w, r, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	// Public tracking link, no auth
	http.Handle("/track/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/track/")
		if id == "" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		d.Tracking.PublicTrack(w, r, id)
	}))

	// Filter presets
	http.Handle("/presets", guarded(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			d.Preset.ListPresets(w, r)
		case http.MethodPost:
			d.Preset.SavePreset(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Column layout
	http.Handle("/columns", guarded(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			d.Column.GetColumns(w, r)
		case http.MethodPut:
			d.Column.PutColumns(w, r)
		case http.MethodDelete:
			d.Column.ResetColumns(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/columns/move", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Column.MoveColumn(w, r)
	}))
	http.Handle("/columns/update", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Column.UpdateColumn(w, r)
	}))

	// Map
	http.Handle("/map", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.Map.MapShipments(w, r)
	}))
}
