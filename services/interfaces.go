package services

import (
	"context"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/model"
	"github.com/nutrireco/go-reco-engine/store"
)

// BuildRequest describes one dataset build: which registry service to fetch,
// the 1-based row range, and the profile whose tables drive preprocessing.
type BuildRequest struct {
	Name      string `json:"name"`
	ServiceID string `json:"service_id"`
	StartIdx  int    `json:"start_idx"`
	EndIdx    int    `json:"end_idx"`
	Profile   string `json:"profile"`
}

// RecommendRequest asks for the top-N items of a dataset for one need.
type RecommendRequest struct {
	Need string `json:"need"`
	TopN int    `json:"top_n"`
}

// DatasetInfo summarizes a stored dataset for listings.
type DatasetInfo struct {
	Name       string `json:"name"`
	Profile    string `json:"profile"`
	ServiceID  string `json:"service_id"`
	Rows       int    `json:"rows"`
	TotalCount int    `json:"total_count"`
	FetchedAt  string `json:"fetched_at"`
}

// Fetcher retrieves raw rows from the registry API.
type Fetcher interface {
	Fetch(ctx context.Context, serviceID string, startIdx, endIdx int) ([]model.Row, int, error)
}

// ProfileProvider exposes the configured keyword/need profiles.
type ProfileProvider interface {
	ProfileTags() []string
	Profile(tag string) (*config.Profile, error)
}

// DatasetManager manages the lifecycle of preprocessed datasets.
type DatasetManager interface {
	BuildDataset(ctx context.Context, req BuildRequest) (*store.Dataset, error)
	GetDataset(name string) (*store.Dataset, error)
	ListDatasets() []DatasetInfo
	DeleteDataset(name string) error
	ValidateDataset(name string) (model.ValidationReport, error)
	ExportDataset(name, outDir string) (string, error) // returns the directory written
}

// Recommender ranks a stored dataset against a need profile.
type Recommender interface {
	RecommendByNeed(name, need string, topN int) (*model.Recommendation, error)
}

// EngineAccessor is the full surface the API and CLI are wired against.
type EngineAccessor interface {
	ProfileProvider
	DatasetManager
	Recommender
}
