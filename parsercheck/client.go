// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CQLBUILD.
//
//  CQLBUILD is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CQLBUILD is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CQLBUILD.  If not, see <https://www.gnu.org/licenses/>.

package parsercheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/httpclient"
)

const (
	dfltIdleConnTimeoutSecs = 60
	dfltRequestTimeoutSecs  = 10
)

// ValidationResult is the answer of the remote CQL parsing service.
// A grammar problem is data here, not an error - transport failures
// are the only errors this package produces.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Client calls a remote service which is the sole authority on CQL
// grammar. CQLBUILD itself only assembles candidate strings.
type Client struct {
	serviceURL string
	client     *http.Client
}

func (c *Client) ParseCQL(ctx context.Context, query string) (ValidationResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.serviceURL, nil)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to validate query: %w", err)
	}
	q := req.URL.Query()
	q.Add("q", query)
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to validate query: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to validate query: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return ValidationResult{}, fmt.Errorf(
			"failed to validate query: service returned status %d", resp.StatusCode)
	}
	var ans ValidationResult
	if err := json.Unmarshal(body, &ans); err != nil {
		return ValidationResult{}, fmt.Errorf("failed to validate query: %w", err)
	}
	return ans, nil
}

func NewClient(serviceURL string) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = dfltIdleConnTimeoutSecs * time.Second
	return &Client{
		serviceURL: serviceURL,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Timeout:   dfltRequestTimeoutSecs * time.Second,
			Transport: transport,
		},
	}
}
