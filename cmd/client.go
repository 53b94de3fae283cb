package cmd

import (
	errors "github.com/Laisky/errors/v2"

	"github.com/Laisky/video-search/internal/searchview"
	"github.com/Laisky/video-search/library/askapi"
	"github.com/Laisky/video-search/library/config"
)

// newClient builds the API client from the loaded settings
func newClient(opts ...askapi.Option) (*askapi.Client, error) {
	client, err := askapi.NewClient(config.APIBaseURL(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "new api client")
	}

	return client, nil
}

// newOrchestrator builds the client and the orchestrator that drives it
func newOrchestrator() (*askapi.Client, *searchview.Orchestrator, error) {
	timeout, err := apiTimeout()
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}

	return client, searchview.NewOrchestrator(client, searchview.WithTimeout(timeout)), nil
}
