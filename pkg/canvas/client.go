package canvas

import (
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/anycanvas/pkg/config"
	"github.com/noah-isme/anycanvas/pkg/requestid"
)

// Observer receives one observation per completed Canvas request. Status is zero when the
// request never produced a response.
type Observer interface {
	ObserveCanvasRequest(method, path string, status int, duration time.Duration)
}

// NewClient returns a resty client rooted at the Canvas API base URL and authenticated with the
// configured bearer token. observer may be nil.
func NewClient(cfg config.CanvasConfig, logger *zap.Logger, observer Observer) (*resty.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("canvas")

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetLogger(log.Sugar())

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if id := requestid.Value(r.Context()); id != "" {
			r.SetHeader(requestid.Header, id)
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		path := requestPath(resp.Request.URL)
		log.Debug("canvas response",
			zap.String("method", resp.Request.Method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("latency", resp.Time()),
			zap.String("request_id", resp.Request.Header.Get(requestid.Header)),
		)
		if observer != nil {
			observer.ObserveCanvasRequest(resp.Request.Method, path, resp.StatusCode(), resp.Time())
		}
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		path := requestPath(r.URL)
		log.Debug("canvas request failed",
			zap.String("method", r.Method),
			zap.String("path", path),
			zap.Error(err),
		)
		if observer != nil {
			observer.ObserveCanvasRequest(r.Method, path, 0, time.Since(r.Time))
		}
	})

	return client, nil
}

func requestPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
