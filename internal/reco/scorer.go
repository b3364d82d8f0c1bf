// Package reco ranks preprocessed items against need weighting profiles.
package reco

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/errors"
	"github.com/nutrireco/go-reco-engine/model"
)

// DefaultTopN is the number of items returned when the caller does not ask
// for a specific count.
const DefaultTopN = 10

// Scorer ranks feature tables against the need profiles of one configuration
// profile. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	needs map[string]map[string]int
}

// NewScorer creates a scorer over the profile's need table.
func NewScorer(profile *config.Profile) *Scorer {
	return &Scorer{needs: profile.Needs}
}

// Needs returns the known need keys in sorted order.
func (s *Scorer) Needs() []string {
	keys := make([]string, 0, len(s.needs))
	for k := range s.needs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RecommendByNeed scores every row as the weighted sum of its indicators over
// the need's profile and returns the top-N meta rows, highest score first.
//
// An unknown need is a configuration error: no partial result is returned.
// Ties keep their original relative order (stable sort). topN <= 0 selects
// DefaultTopN; fewer qualifying rows than topN returns all of them.
func (s *Scorer) RecommendByNeed(features model.FeatureTable, meta model.MetaTable, need string, topN int) (*model.Recommendation, error) {
	weights, ok := s.needs[need]
	if !ok {
		return nil, errors.NewUnknownNeedError(need, s.Needs())
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	started := time.Now()

	items := make([]model.RankedItem, 0, features.Len())
	for i, featureRow := range features.Rows {
		score := 0
		for key, weight := range weights {
			if indicator, present := featureRow.Indicators[key]; present {
				score += indicator * weight
			}
		}

		var metaRow model.Row
		if i < meta.Len() {
			metaRow = meta.Rows[i].Clone()
		} else {
			metaRow = model.Row{}
		}
		items = append(items, model.RankedItem{Meta: metaRow, Score: score})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Score > items[b].Score
	})

	total := len(items)
	if len(items) > topN {
		items = items[:topN]
	}

	return &model.Recommendation{
		Need:    need,
		Items:   items,
		Total:   total,
		Took:    time.Since(started).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}
