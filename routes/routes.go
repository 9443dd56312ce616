package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"lgs.et/fleet/handlers"
	"lgs.et/fleet/middleware"
)

// crudHandlers bundles the standard handlers for one resource. Nil
// entries skip the route, which is how dispatch records end up with no
// DELETE (the register is append-only).
type crudHandlers struct {
	list   http.HandlerFunc
	create http.HandlerFunc
	get    http.HandlerFunc
	update http.HandlerFunc
	del    http.HandlerFunc
}

func registerCRUDRoutes(r *mux.Router, prefix, resource string, h crudHandlers) {
	if h.list != nil {
		r.Handle(prefix, middleware.RequireCapability(resource+":read", h.list)).Methods("GET")
	}
	if h.create != nil {
		r.Handle(prefix, middleware.RequireCapability(resource+":create", h.create)).Methods("POST")
	}
	if h.get != nil {
		r.Handle(prefix+"/{id}", middleware.RequireCapability(resource+":read", h.get)).Methods("GET")
	}
	if h.update != nil {
		r.Handle(prefix+"/{id}", middleware.RequireCapability(resource+":update", h.update)).Methods("PUT")
	}
	if h.del != nil {
		r.Handle(prefix+"/{id}", middleware.RequireCapability(resource+":delete", h.del)).Methods("DELETE")
	}
}

func RegisterRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// Public
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/password-reset/request", handlers.RequestPasswordReset).Methods("POST")
	r.HandleFunc("/password-reset/confirm", handlers.ConfirmPasswordReset).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(handlers.UploadDir()))))

	// Everything under /api/v1 needs a session token
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")
	api.Handle("/dashboard",
		middleware.RequireCapability("dashboard:read", handlers.GetDashboard)).Methods("GET")

	// Dispatch register
	registerCRUDRoutes(api, "/dispatch", "dispatch", crudHandlers{
		list:   handlers.GetAllDispatchRecords,
		create: handlers.CreateDispatchRecord,
		get:    handlers.GetDispatchRecord,
		update: handlers.UpdateDispatchRecord,
	})
	api.Handle("/dispatch/{id}/submit",
		middleware.RequireCapability("dispatch:submit", handlers.SubmitDispatchRecord)).Methods("POST")
	api.Handle("/dispatch/{id}/approve",
		middleware.RequireCapability("dispatch:approve", handlers.ApproveDispatchRecord)).Methods("POST")
	api.Handle("/dispatch/{id}/reject",
		middleware.RequireCapability("dispatch:approve", handlers.RejectDispatchRecord)).Methods("POST")

	// Fleet
	registerCRUDRoutes(api, "/vehicles", "vehicle", crudHandlers{
		list:   handlers.GetAllVehicles,
		create: handlers.CreateVehicle,
		get:    handlers.GetVehicle,
		update: handlers.UpdateVehicle,
		del:    handlers.DeleteVehicle,
	})
	api.Handle("/vehicles/{id}/flag-maintenance",
		middleware.RequireCapability("vehicle:maintain", handlers.FlagVehicleForMaintenance)).Methods("POST")
	api.Handle("/vehicles/{id}/rental",
		middleware.RequireCapability("vehicle:update", handlers.SetVehicleRental)).Methods("PUT")
	api.Handle("/vehicles/{id}/maintenance",
		middleware.RequireCapability("vehicle:read", handlers.GetMaintenanceRecords)).Methods("GET")
	api.Handle("/vehicles/{id}/maintenance",
		middleware.RequireCapability("vehicle:maintain", handlers.AddMaintenanceRecord)).Methods("POST")
	api.Handle("/vehicles/{id}/maintenance/{recordId}/complete",
		middleware.RequireCapability("vehicle:maintain", handlers.CompleteMaintenanceRecord)).Methods("POST")

	// Cash ledger. Stats before the CRUD block so "/telebirr/stats"
	// doesn't match the {id} route.
	api.Handle("/telebirr/stats",
		middleware.RequireCapability("telebirr:read", handlers.GetTelebirrStats)).Methods("GET")
	registerCRUDRoutes(api, "/telebirr", "telebirr", crudHandlers{
		list:   handlers.GetAllTelebirrTransactions,
		create: handlers.CreateTelebirrTransaction,
		get:    handlers.GetTelebirrTransaction,
		update: handlers.UpdateTelebirrTransaction,
	})
	api.Handle("/telebirr/{id}/approve",
		middleware.RequireCapability("telebirr:approve", handlers.ApproveTelebirrTransaction)).Methods("POST")
	api.Handle("/telebirr/{id}/reject",
		middleware.RequireCapability("telebirr:approve", handlers.RejectTelebirrTransaction)).Methods("POST")

	// Staff directory
	registerCRUDRoutes(api, "/staff", "staff", crudHandlers{
		list:   handlers.GetAllStaff,
		create: handlers.CreateStaff,
		get:    handlers.GetStaff,
		update: handlers.UpdateStaff,
		del:    handlers.DeleteStaff,
	})

	// Exports
	api.Handle("/export/dispatch.xlsx",
		middleware.RequireCapability("export:read", handlers.ExportDispatchExcel)).Methods("GET")
	api.Handle("/export/dispatch.csv",
		middleware.RequireCapability("export:read", handlers.ExportDispatchCSV)).Methods("GET")
	api.Handle("/export/telebirr.xlsx",
		middleware.RequireCapability("export:read", handlers.ExportTelebirrExcel)).Methods("GET")
	api.Handle("/export/telebirr.csv",
		middleware.RequireCapability("export:read", handlers.ExportTelebirrCSV)).Methods("GET")

	// Photo and signature uploads
	api.Handle("/files",
		middleware.RequireCapability("file:create", handlers.UploadFile)).Methods("POST")

	// Admin gate entry point stays on the session router; the gate
	// middleware applies only past it.
	api.HandleFunc("/admin/verify", handlers.VerifyAdminAccessCode).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminGateMiddleware)
	admin.HandleFunc("/settings", handlers.GetSettings).Methods("GET")
	admin.HandleFunc("/settings", handlers.UpsertSetting).Methods("PUT")
	admin.HandleFunc("/zones", handlers.GetDeliveryZones).Methods("GET")
	admin.HandleFunc("/zones", handlers.UpsertDeliveryZone).Methods("PUT")
	admin.HandleFunc("/users", handlers.GetAllUsers).Methods("GET")
	admin.HandleFunc("/users/{id}/active", handlers.SetUserActive).Methods("PUT")
	admin.HandleFunc("/users/{id}/role", handlers.SetUserRole).Methods("PUT")

	return r
}
