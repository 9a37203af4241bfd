package words

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vovakirdan/typejump/internal/config"
)

// maxPayload caps how much of a response body is read.
const maxPayload = 1 << 20

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: empty word list")

// Remote asks an HTTP word generator for a themed list. The endpoint
// receives difficulty and count query parameters and answers with JSON; the
// words are read from ResultPath (a gjson path, empty for a top-level array).
type Remote struct {
	client     *http.Client
	endpoint   string
	resultPath string
	count      int
}

// NewRemote creates a remote supplier from config.
func NewRemote(cfg config.WordsConfig) (*Remote, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("words: remote source needs an endpoint")
	}
	if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("words: bad endpoint: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{
		client:     &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		resultPath: cfg.ResultPath,
		count:      cfg.Count,
	}, nil
}

// FetchWords requests the list for d.
func (r *Remote) FetchWords(ctx context.Context, d config.Difficulty) ([]string, error) {
	u, err := url.Parse(r.endpoint)
	if err != nil {
		return nil, fmt.Errorf("words: bad endpoint: %w", err)
	}
	q := u.Query()
	q.Set("difficulty", strings.ToLower(d.String()))
	if r.count > 0 {
		q.Set("count", strconv.Itoa(r.count))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("words: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("words: fetch: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("words: fetch: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("words: read body: %w", err)
	}
	return ParsePayload(body, r.resultPath)
}

// ParsePayload extracts the string items of the JSON array at path.
// Non-string items are skipped.
func ParsePayload(body []byte, path string) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("words: malformed JSON payload")
	}

	var arr gjson.Result
	if path == "" {
		arr = gjson.ParseBytes(body)
	} else {
		arr = gjson.GetBytes(body, path)
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("words: payload at %q is not an array", path)
	}

	var raw []string
	arr.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			raw = append(raw, item.String())
		}
		return true
	})

	words := Normalize(raw)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
