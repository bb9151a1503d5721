package controller

import (
	"net/http"

	"github.com/ledgerworks/banking-ledger/internal/logger"
)

func logRequest(r *http.Request, payload any) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if payload != nil {
		fields["payload"] = logger.SanitizePayload(payload)
	}
	logger.Info("http request", fields)
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
