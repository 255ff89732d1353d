package http

import (
	"net/http"

	"inkwell/internal/adapters/http/middleware"
	"inkwell/internal/adapters/http/response"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type RouterDeps struct {
	Auth *AuthHandler
	Post *PostHandler
	Feed http.Handler

	Authenticator domain.Authenticator
	Writer        response.ResponseWriter
}

func NewRouter(cfg *config.Config, log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()
	prefix := cfg.APIPrefix

	globalMw := middleware.New()
	globalMw.Use(middleware.Recover(deps.Writer, log))
	globalMw.Use(middleware.RequestLogger(log))
	globalMw.Use(middleware.CORS(cfg))

	authMw := middleware.NewAuth(deps.Authenticator, deps.Writer, log)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST "+prefix+"/user/signup", deps.Auth.Signup)
	mux.HandleFunc("POST "+prefix+"/user/signin", deps.Auth.Signin)

	mux.Handle("POST "+prefix+"/blog/create", authMw.Require(deps.Post.Create))
	mux.Handle("PUT "+prefix+"/blog/update", authMw.Require(deps.Post.Update))
	mux.HandleFunc("GET "+prefix+"/blog/bulk", deps.Post.List)
	mux.HandleFunc("GET "+prefix+"/blog/{id}", deps.Post.Get)

	if deps.Feed != nil {
		mux.Handle("GET "+prefix+"/ws/feed", deps.Feed)
	}

	return globalMw.Apply(mux)
}
