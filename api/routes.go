package api

import (
	"github.com/condohub/condohub/internal/config"
	"github.com/condohub/condohub/internal/db"
	"github.com/condohub/condohub/internal/repository/sqlite"
	"github.com/condohub/condohub/internal/storage"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, conn *db.DB, store storage.ObjectStore) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(conn, nil)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, repo, repo, cfg.JWTSecret, cfg.TokenDuration)
	profileHandler := NewProfileHandler(repo, repo)
	requestsHandler := NewRequestsHandler(repo, repo, repo)
	filesHandler := NewFilesHandler(repo, store, cfg.SignedURLTTL)
	propertiesHandler := NewPropertiesHandler(repo)
	employeesHandler := NewEmployeesHandler(repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Profile
	apiV1.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")

	// Maintenance requests
	apiV1.HandleFunc("/requests", requestsHandler.CreateRequest).Methods("POST")
	apiV1.HandleFunc("/requests", requestsHandler.ListRequests).Methods("GET")
	apiV1.HandleFunc("/requests/{id:[0-9]+}", requestsHandler.GetRequest).Methods("GET")
	apiV1.HandleFunc("/requests", requestsHandler.UpdateRequest).Methods("PATCH")

	// Property documents
	apiV1.HandleFunc("/files", filesHandler.UploadFile).Methods("POST")
	apiV1.HandleFunc("/files", filesHandler.ListFiles).Methods("GET")

	// Properties
	apiV1.HandleFunc("/properties", propertiesHandler.CreateProperty).Methods("POST")
	apiV1.HandleFunc("/properties", propertiesHandler.ListProperties).Methods("GET")

	// Employees
	apiV1.HandleFunc("/employees", employeesHandler.AddEmployee).Methods("POST")
	apiV1.HandleFunc("/employees", employeesHandler.ListEmployees).Methods("GET")

	return r
}
