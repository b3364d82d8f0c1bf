// Package engine orchestrates the recommendation pipeline: fetching registry
// rows, preprocessing them into datasets, persisting snapshots, and answering
// recommendation queries.
package engine

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/errors"
	"github.com/nutrireco/go-reco-engine/internal/features"
	"github.com/nutrireco/go-reco-engine/internal/persistence"
	"github.com/nutrireco/go-reco-engine/internal/reco"
	"github.com/nutrireco/go-reco-engine/internal/report"
	"github.com/nutrireco/go-reco-engine/model"
	"github.com/nutrireco/go-reco-engine/services"
	"github.com/nutrireco/go-reco-engine/store"
)

const (
	dataDirPerm = 0755
	datasetFile = "dataset.gob"
	exportDir   = "processed"
)

// Engine implements services.EngineAccessor. Profiles are immutable after
// construction; datasets live in the store and as gob snapshots under dataDir.
type Engine struct {
	profiles map[string]*config.Profile
	fetcher  services.Fetcher
	datasets *store.DatasetStore
	dataDir  string
}

// NewEngine creates the orchestrator and loads any persisted datasets from
// dataDir.
func NewEngine(dataDir string, profiles map[string]*config.Profile, fetcher services.Fetcher) *Engine {
	eng := &Engine{
		profiles: profiles,
		fetcher:  fetcher,
		datasets: store.NewDatasetStore(),
		dataDir:  dataDir,
	}
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v. Proceeding without persistence.", dataDir, err)
	}
	eng.loadDatasetsFromDisk()
	return eng
}

func (e *Engine) loadDatasetsFromDisk() {
	items, err := os.ReadDir(e.dataDir)
	if err != nil {
		log.Printf("Warning: Failed to read data directory %s: %v. No datasets loaded.", e.dataDir, err)
		return
	}

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		name := item.Name()
		path := filepath.Join(e.dataDir, name, datasetFile)

		var ds store.Dataset
		if err := persistence.LoadGob(path, &ds); err != nil {
			if err != os.ErrNotExist {
				log.Printf("Warning: Failed to load dataset %s from %s: %v. Skipping.", name, path, err)
			}
			continue
		}
		if ds.Name != name {
			log.Printf("Warning: Dataset name in snapshot ('%s') does not match directory name ('%s'). Skipping.", ds.Name, name)
			continue
		}
		e.datasets.Put(&ds)
		log.Printf("Loaded dataset '%s' (%d rows)", name, ds.Features.Len())
	}
}

// ProfileTags returns the configured profile tags in sorted order.
func (e *Engine) ProfileTags() []string {
	tags := make([]string, 0, len(e.profiles))
	for tag := range e.profiles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Profile returns the profile configured under tag.
func (e *Engine) Profile(tag string) (*config.Profile, error) {
	p, ok := e.profiles[tag]
	if !ok {
		return nil, errors.NewProfileNotFoundError(tag)
	}
	return p, nil
}

// Preprocess runs the pure pipeline over caller-supplied rows without storing
// anything: merge text, match keywords, filter zero-hit rows.
func (e *Engine) Preprocess(rows []model.Row, profileTag string) (model.FeatureTable, model.MetaTable, error) {
	profile, err := e.Profile(profileTag)
	if err != nil {
		return model.FeatureTable{}, model.MetaTable{}, err
	}
	builder, err := features.NewBuilder(profile)
	if err != nil {
		return model.FeatureTable{}, model.MetaTable{}, err
	}
	featureTable, metaTable := builder.Build(rows)
	return featureTable, metaTable, nil
}

// BuildDataset fetches the requested row range, preprocesses it with the
// requested profile, stores the result under req.Name, and persists a
// snapshot. Building over an existing name is a conflict.
func (e *Engine) BuildDataset(ctx context.Context, req services.BuildRequest) (*store.Dataset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}
	if e.datasets.Has(req.Name) {
		return nil, errors.NewDatasetAlreadyExistsError(req.Name)
	}
	profileTag := req.Profile
	if profileTag == "" {
		profileTag = "supplement"
	}
	if _, err := e.Profile(profileTag); err != nil {
		return nil, err
	}

	rows, total, err := e.fetcher.Fetch(ctx, req.ServiceID, req.StartIdx, req.EndIdx)
	if err != nil {
		return nil, err
	}

	featureTable, metaTable, err := e.Preprocess(rows, profileTag)
	if err != nil {
		return nil, err
	}

	ds := &store.Dataset{
		Name:       req.Name,
		Profile:    profileTag,
		ServiceID:  req.ServiceID,
		StartIdx:   req.StartIdx,
		EndIdx:     req.EndIdx,
		TotalCount: total,
		FetchedAt:  time.Now(),
		Features:   featureTable,
		Meta:       metaTable,
	}
	e.datasets.Put(ds)

	snapshotPath := filepath.Join(e.dataDir, ds.Name, datasetFile)
	if err := persistence.SaveGob(snapshotPath, ds); err != nil {
		log.Printf("Warning: Failed to persist dataset '%s': %v. Dataset is in memory only.", ds.Name, err)
	}

	log.Printf("Built dataset '%s': %d raw rows -> %d feature rows (profile=%s)",
		ds.Name, len(rows), featureTable.Len(), profileTag)
	return ds, nil
}

// GetDataset returns the dataset stored under name.
func (e *Engine) GetDataset(name string) (*store.Dataset, error) {
	ds, ok := e.datasets.Get(name)
	if !ok {
		return nil, errors.NewDatasetNotFoundError(name)
	}
	return ds, nil
}

// ListDatasets summarizes every stored dataset, sorted by name.
func (e *Engine) ListDatasets() []services.DatasetInfo {
	names := e.datasets.List()
	infos := make([]services.DatasetInfo, 0, len(names))
	for _, name := range names {
		ds, ok := e.datasets.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, services.DatasetInfo{
			Name:       ds.Name,
			Profile:    ds.Profile,
			ServiceID:  ds.ServiceID,
			Rows:       ds.Features.Len(),
			TotalCount: ds.TotalCount,
			FetchedAt:  ds.FetchedAt.Format(time.RFC3339),
		})
	}
	return infos
}

// DeleteDataset removes a dataset from memory and disk.
func (e *Engine) DeleteDataset(name string) error {
	if !e.datasets.Delete(name) {
		return errors.NewDatasetNotFoundError(name)
	}
	dir := filepath.Join(e.dataDir, name)
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("Warning: Failed to remove dataset directory %s: %v", dir, err)
	}
	return nil
}

// ValidateDataset produces the diagnostic report for a stored dataset.
func (e *Engine) ValidateDataset(name string) (model.ValidationReport, error) {
	ds, err := e.GetDataset(name)
	if err != nil {
		return model.ValidationReport{}, err
	}
	return report.Validate(ds.Features, &ds.Meta), nil
}

// ExportDataset writes the dataset's feature and meta tables as CSV files and
// returns the directory written. An empty outDir exports under the dataset's
// own data directory.
func (e *Engine) ExportDataset(name, outDir string) (string, error) {
	ds, err := e.GetDataset(name)
	if err != nil {
		return "", err
	}
	if outDir == "" {
		outDir = filepath.Join(e.dataDir, name, exportDir)
	}
	if err := persistence.ExportCSV(outDir, ds.Features, ds.Meta); err != nil {
		return "", err
	}
	return outDir, nil
}

// RecommendByNeed ranks a stored dataset against one of its profile's needs.
func (e *Engine) RecommendByNeed(name, need string, topN int) (*model.Recommendation, error) {
	ds, err := e.GetDataset(name)
	if err != nil {
		return nil, err
	}
	profile, err := e.Profile(ds.Profile)
	if err != nil {
		return nil, err
	}
	return reco.NewScorer(profile).RecommendByNeed(ds.Features, ds.Meta, need, topN)
}
