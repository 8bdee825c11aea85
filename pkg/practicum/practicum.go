package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
)

const QueryKeyFromDate = "from_date"

type Client interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient timeout 0 оставляет таймаут транспорта по умолчанию.
func NewClient(endpoint, token string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

func (c *client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	params := url.Values{
		QueryKeyFromDate: {strconv.FormatInt(fromDate, 10)},
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, ierrors.Endpoint("homework statuses request was not built", err)
	}
	request.URL.RawQuery = params.Encode()

	request.Header.Set("Authorization", "OAuth "+c.token)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, ierrors.Endpoint("homework statuses request was not sent", fmt.Errorf("httpClient.Do: %w", err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, ierrors.Endpoint("homework statuses response was not read", fmt.Errorf("io.ReadAll (response.Body): %w", err))
	}

	if response.StatusCode != http.StatusOK {
		return nil, &ierrors.Error{
			Kind:       ierrors.KindEndpoint,
			Msg:        "homework statuses endpoint " + summarizeBody(response.Header.Get("Content-Type"), body),
			StatusCode: response.StatusCode,
			Reason:     http.StatusText(response.StatusCode),
			Params:     params,
			Body:       string(body),
		}
	}

	var decoded any
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	err = decoder.Decode(&decoded)
	if err == nil {
		if _, tokenErr := decoder.Token(); !errors.Is(tokenErr, io.EOF) {
			err = errors.New("unexpected data after the JSON value")
		}
	}
	if err != nil {
		return nil, &ierrors.Error{
			Kind:   ierrors.KindEndpoint,
			Msg:    "homework statuses response is not a valid JSON",
			Err:    fmt.Errorf("json.Decode: %w", err),
			Params: params,
			Body:   string(body),
		}
	}

	return decoded, nil
}
