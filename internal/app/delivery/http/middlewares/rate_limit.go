package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// BookingRateLimit throttles booking attempts per authenticated patient. The
// global per-IP limiter still applies; this one is tighter because every
// attempt takes a distributed lock.
func (m *Middlewares) BookingRateLimit(next http.Handler) http.Handler {
	attemptsPerMinute := m.InternalConfig.Booking.MaxAttemptsPerMinute
	limiters := &sync.Map{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok {
			key = session.PatientID
		}

		entry, _ := limiters.LoadOrStore(key, rate.NewLimiter(rate.Every(time.Minute/time.Duration(attemptsPerMinute)), attemptsPerMinute))
		limiter := entry.(*rate.Limiter)

		if !limiter.Allow() {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(time.Minute.Seconds())))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyBookingAttempts())
			return
		}

		next.ServeHTTP(w, r)
	})
}
