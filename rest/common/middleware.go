package common

import (
	"net/http"
	"strings"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/usermgmt"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// AuthHandler is a route handler that also receives the caller's token claims,
// nil when the request carried no valid token.
type AuthHandler func(
	w http.ResponseWriter,
	r *http.Request,
	p httprouter.Params,
	user *model.Claims,
)

func claims(r *http.Request) *model.Claims {
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" || token == header {
		return nil
	}
	c, err := usermgmt.ParseToken(token)
	if err != nil {
		log.WarnWithContext(r.Context(), "ignoring invalid token: %v", err)
		return nil
	}
	return c
}

// Authenticate passes the caller's claims along without requiring any.
func Authenticate(next AuthHandler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		next(w, r, p, claims(r))
	}
}

func LoggedInRequired(next AuthHandler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		user := claims(r)
		if user == nil {
			SendError(w, r, apperror.NewUnauthorized("unauthorized"))
			return
		}
		next(w, r, p, user)
	}
}

func AdminRequired(next AuthHandler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		user := claims(r)
		if user == nil || !user.IsAdmin {
			SendError(w, r, apperror.NewUnauthorized("unauthorized"))
			return
		}
		next(w, r, p, user)
	}
}

// CorrectUserOrAdminRequired lets through admins and the user named by the
// :username route parameter.
func CorrectUserOrAdminRequired(next AuthHandler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		user := claims(r)
		if user == nil || (!user.IsAdmin && user.Username != p.ByName("username")) {
			SendError(w, r, apperror.NewUnauthorized("unauthorized"))
			return
		}
		next(w, r, p, user)
	}
}

// RequestID tags every request with an id, reusing X-Request-ID when the caller sent one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(log.WithRequestID(r.Context(), id)))
	})
}
