package routes

import (
	"net/http"

	_ "github.com/oggyb/chat-archive/internal/docs" // swagger docs
	"github.com/oggyb/chat-archive/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	StoreMessage(w http.ResponseWriter, r *http.Request)
	GetMessages(w http.ResponseWriter, r *http.Request)
	GetUserMessages(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	StartStopScheduler(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /api/v1/messages", d.Message.StoreMessage)
	mux.HandleFunc("GET /api/v1/messages", d.Message.GetMessages)
	mux.HandleFunc("GET /api/v1/users/{user_id}/messages", d.Message.GetUserMessages)
	mux.HandleFunc("DELETE /api/v1/users/{user_id}", d.Message.DeleteUser)

	mux.HandleFunc("POST /scheduler", d.Message.StartStopScheduler)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
