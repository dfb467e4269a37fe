package httpjson

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ansel1/merry/v2"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrTransport covers DNS, connection and timeout failures.
	ErrTransport = merry.Sentinel("transport error")
	// ErrStatus is returned for any non-200 response.
	ErrStatus = merry.Sentinel("unexpected HTTP status")
	// ErrDecode is returned when the body is not valid JSON.
	ErrDecode = merry.Sentinel("response body is not valid JSON")
)

// Client fetches JSON documents over HTTP. It performs exactly one request
// per call: retry and caching policy belong to the caller, not here.
type Client struct {
	restyClient *resty.Client
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	client.SetDisableWarn(true)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &Client{
		restyClient: client,
	}
}

// FetchInto performs one GET and decodes the JSON body into out. The
// contextID identifies the media item in error messages. Transport, status
// and decode failures are distinguishable via errors.Is.
func (c *Client) FetchInto(url, contextID string, out any) error {
	res, err := c.restyClient.R().Get(url)
	if err != nil {
		return merry.Wrap(ErrTransport, merry.WithCause(err),
			merry.WithMessagef("%s: transport error: %v", contextID, err))
	}

	if res.StatusCode() != http.StatusOK {
		return merry.Wrap(ErrStatus,
			merry.WithMessagef("%s: unexpected HTTP status %d", contextID, res.StatusCode()))
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return merry.Wrap(ErrDecode, merry.WithCause(err),
			merry.WithMessagef("%s: response body is not valid JSON: %v", contextID, err))
	}

	return nil
}

// FetchJSON is FetchInto for callers that want the document as a plain
// key/value map.
func (c *Client) FetchJSON(url, contextID string) (map[string]any, error) {
	var doc map[string]any
	if err := c.FetchInto(url, contextID, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
