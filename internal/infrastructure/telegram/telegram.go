package telegram

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kamronbek003/sellerProject/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

const defaultBaseURL = "https://api.telegram.org"

// Verifier answers whether a bot token is accepted by the Telegram Bot API
// (getMe). The breaker keeps registration responsive when Telegram is down:
// once it opens, callers get an error instead of a ten-second timeout, and
// the auth flow treats that as "verification unavailable".
type Verifier struct {
	cb      *gobreaker.CircuitBreaker[bool]
	baseURL string
}

func CreateVerifier() *Verifier {
	var st gobreaker.Settings
	st.Name = "telegram-getme"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &Verifier{
		cb:      gobreaker.NewCircuitBreaker[bool](st),
		baseURL: defaultBaseURL,
	}
}

func (v *Verifier) VerifyToken(ctx context.Context, token string) (bool, error) {
	return v.cb.Execute(func() (bool, error) {
		status, _, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/bot%s/getMe", v.baseURL, token),
			Method: http.MethodGet,
		})
		if err != nil {
			return false, err
		}

		// 401/404 is Telegram's definitive answer for a bad token, not an
		// outage, so it must not trip the breaker.
		return status == http.StatusOK, nil
	})
}
