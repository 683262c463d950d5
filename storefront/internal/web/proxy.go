package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/rs/zerolog/log"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Connection-level headers that apply to a single hop and must not be
// forwarded, as listed in RFC 9110 section 7.6.1.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

var proxiedPrefixes = []string{
	"/api/getmealsbyarea",
	"/api/submitorder",
	"/api/registermeal",
	"/api/registerrestaurant",
	"/api/popularmeals",
	"/api/orders/",
}

// Proxy forwards /api requests to the meal service so the browser can reach
// it from the storefront origin.
type Proxy struct {
	upstream string
	client   HTTPClient
}

// NewProxy takes the meal API base URL, e.g. http://localhost:8081/api.
func NewProxy(mealAPIURL string, client HTTPClient) *Proxy {
	upstream := strings.TrimSuffix(strings.TrimSuffix(mealAPIURL, "/"), "/api")
	return &Proxy{upstream: upstream, client: client}
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !isProxied(r.URL.Path) {
		log.Debug().Str("path", r.URL.Path).Msg("unmatched api route")
		writeJSONError(w, http.StatusNotFound, "API route not found")
		return
	}
	if p == nil || p.client == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Meal service is not configured")
		return
	}

	url := p.upstream + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("target", url).Msg("proxy")

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to create proxy request")
		writeJSONError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}
	req.Header = forwardHeaders(r.Header)
	// The storefront session belongs to this origin only.
	req.Header.Del("Cookie")

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("target", p.upstream).Msg("failed to proxy")
		writeJSONError(w, http.StatusBadGateway, "Meal service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range forwardHeaders(resp.Header) {
		if k == "Set-Cookie" {
			continue
		}
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn().Err(err).Msg("failed to copy proxied response")
	}
}

// forwardHeaders returns a copy of h without hop-by-hop headers, including
// any named in the Connection header.
func forwardHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		out = make(http.Header)
	}
	for _, v := range h.Values("Connection") {
		for _, name := range strings.Split(v, ",") {
			if name = textproto.TrimString(name); name != "" {
				out.Del(name)
			}
		}
	}
	for _, name := range hopHeaders {
		out.Del(name)
	}
	return out
}

func isProxied(path string) bool {
	for _, prefix := range proxiedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
