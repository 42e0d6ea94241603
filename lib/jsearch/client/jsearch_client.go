package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/models"
	jsearchapimodels "job-board-backend/models/api/jsearch"
)

type Provider interface {
	//https://rapidapi.com/letscrape-6bRBa3QguO5/api/jsearch
	Search(ctx context.Context, params jsearchapimodels.SearchParams) (*jsearchapimodels.SearchResponse, error)
}

var Instance Provider

type impl struct {
	host           string
	apiKey         string
	defaultQuery   string
	defaultPages   int
	defaultCountry string
	client         *http.Client
}

func NewProvider(host, apiKey, defaultQuery string, defaultPages int, defaultCountry string, timeout time.Duration) {
	Instance = &impl{
		host:           host,
		apiKey:         apiKey,
		defaultQuery:   defaultQuery,
		defaultPages:   defaultPages,
		defaultCountry: defaultCountry,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

const (
	searchPath string = "/search"

	// the board only lists internships, so the provider filter is fixed
	datePostedFilter      string = "all"
	employmentTypesFilter string = "INTERN"
)

// Search fetches one provider response starting at page 1, a new call
// re-fetches from scratch. Empty params fall back to the configured defaults.
func (i impl) Search(ctx context.Context, params jsearchapimodels.SearchParams) (*jsearchapimodels.SearchResponse, error) {
	query := params.Query
	if query == "" {
		query = i.defaultQuery
	}
	pages := params.Pages
	if pages <= 0 {
		pages = i.defaultPages
	}
	country := params.Country
	if country == "" {
		country = i.defaultCountry
	}

	data := url.Values{}
	data.Set("query", query)
	data.Set("num_pages", strconv.Itoa(pages))
	data.Set("country", country)
	data.Set("date_posted", datePostedFilter)
	data.Set("employment_types", employmentTypesFilter)
	uri := i.host + searchPath + "?" + data.Encode()

	logger := log.
		WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	resp := jsearchapimodels.SearchResponse{}
	err := i.sendRequest(logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("x-rapidapi-key", i.apiKey)
	r.Header.Add("x-rapidapi-host", r.URL.Host)
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("provider request failed")
		return errors.Wrap(models.ErrSourceUnavailable, err.Error())
	}
	defer response.Body.Close()
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		responseBody, _ := io.ReadAll(response.Body)
		err = json.Unmarshal(responseBody, resp)
		if err != nil {
			logger.WithError(err).Error("provider response decode failed")
			return errors.Wrap(models.ErrSourceUnavailable, "bad provider response")
		}
		return nil
	}

	errorResp := jsearchapimodels.ErrorData{}
	responseBody, _ := io.ReadAll(response.Body)
	logger = logger.WithField("response_body", string(responseBody))
	if err = json.Unmarshal(responseBody, &errorResp); err != nil {
		logger.WithError(err).Error("provider error decode failed")
	}
	logger.Error("provider request rejected")
	return errors.Wrap(models.ErrSourceUnavailable, fmt.Sprintf("status %v: %v", response.StatusCode, errorResp.Message))
}
