package lklwa

import (
	"encoding/json"
	"net/http"

	"github.com/advdv/bhttp"
	"github.com/stackmill/lambdakit/lkerr"
	"github.com/stackmill/lambdakit/lkhttp"
	"github.com/stackmill/lambdakit/lktracing"
	"go.uber.org/zap"
)

// withErrorMapping converts handler errors into JSON error responses.
// The status code is fixed by the error's kind; unknown errors get a
// generic message so internal detail never reaches clients. Every error
// is logged twice: once raw, once classified.
func withErrorMapping(log *zap.Logger) bhttp.Middleware {
	return func(next bhttp.BareHandler) bhttp.BareHandler {
		return bhttp.BareHandlerFunc(func(w bhttp.ResponseWriter, r *http.Request) error {
			err := next.ServeBareBHTTP(w, r)
			if err == nil {
				return nil
			}

			fields := lktracing.Fields(r.Context())
			log.Error("handler error", append(fields, zap.Error(err))...)

			kind := lkerr.KindOf(err)
			status := kind.Status()
			msg := lkerr.ClientMessage(err)

			log.Error(msg, append(fields,
				zap.String("errorName", msg),
				zap.Int("statusCode", status),
			)...)

			// Discard anything the handler wrote before failing so the
			// response carries only the error status and body.
			w.Reset()
			for k, v := range lkhttp.DefaultHeaders() {
				w.Header().Set(k, v)
			}
			w.WriteHeader(status)
			return json.NewEncoder(w).Encode(struct {
				Error      string `json:"error"`
				StatusCode int    `json:"statusCode"`
			}{Error: msg, StatusCode: status})
		})
	}
}
