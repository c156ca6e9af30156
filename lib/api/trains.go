// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// TrainQuery holds the server-side search parameters for
// GET /trains/search. Zero-valued fields are omitted from the query.
type TrainQuery struct {
	TrainNumber   string
	Source        string
	Destination   string
	DepartureDate string
}

// empty reports whether no search parameter is set, in which case the
// plain /trains listing is the right endpoint.
func (query TrainQuery) empty() bool {
	return query.TrainNumber == "" && query.Source == "" &&
		query.Destination == "" && query.DepartureDate == ""
}

// Trains lists every train.
func (client *Client) Trains(ctx context.Context) ([]Train, error) {
	var trains []Train
	if err := client.getJSON(ctx, "list trains", "/trains", nil, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// SearchTrains queries trains with backend filtering. An empty query
// falls back to the full listing.
func (client *Client) SearchTrains(ctx context.Context, query TrainQuery) ([]Train, error) {
	if query.empty() {
		return client.Trains(ctx)
	}

	values := url.Values{}
	if query.TrainNumber != "" {
		values.Set("trainNumber", query.TrainNumber)
	}
	if query.Source != "" {
		values.Set("source", query.Source)
	}
	if query.Destination != "" {
		values.Set("destination", query.Destination)
	}
	if query.DepartureDate != "" {
		values.Set("departureDate", query.DepartureDate)
	}

	var trains []Train
	if err := client.getJSON(ctx, "search trains", "/trains/search", values, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// Train fetches a single train by id.
func (client *Client) Train(ctx context.Context, trainID string) (Train, error) {
	var train Train
	path := "/trains/" + url.PathEscape(trainID)
	if err := client.getJSON(ctx, "get train", path, nil, &train); err != nil {
		return Train{}, err
	}
	return train, nil
}

// CreateTrain adds a train. Admin-only server-side. The backend
// assigns the id.
func (client *Client) CreateTrain(ctx context.Context, train Train) error {
	return client.sendJSON(ctx, "create train", http.MethodPost, "/trains", nil, train, nil)
}

// UpdateTrain replaces a train's editable fields via PUT /trains/{id}.
func (client *Client) UpdateTrain(ctx context.Context, trainID string, train Train) error {
	path := "/trains/" + url.PathEscape(trainID)
	return client.sendJSON(ctx, "update train", http.MethodPut, path, nil, train, nil)
}

// DeleteTrain removes a train.
func (client *Client) DeleteTrain(ctx context.Context, trainID string) error {
	path := "/trains/" + url.PathEscape(trainID)
	return client.sendJSON(ctx, "delete train", http.MethodDelete, path, nil, nil, nil)
}
