package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/epeers/estateplan/internal/models"
)

var (
	// ErrNoAssetData means the asset collection has not been loaded yet
	ErrNoAssetData = errors.New("no asset data available")
	// ErrUnknownScenario means the requested death order is not supported
	ErrUnknownScenario = errors.New("unknown scenario kind")
)

// bucketLayouts fixes which buckets each scenario reports and in what order
var bucketLayouts = map[models.ScenarioKind][]models.BucketKey{
	models.ScenarioClientFirst: {
		models.BucketClientProbate,
		models.BucketClientNonProbate,
		models.BucketClientJointSpouse,
		models.BucketClientJointOther,
		models.BucketSpouseSole,
		models.BucketTrust,
		models.BucketLLC,
	},
	models.ScenarioSpouseFirst: {
		models.BucketSpouseProbate,
		models.BucketSpouseNonProbate,
		models.BucketSpouseJointClient,
		models.BucketSpouseJointOther,
		models.BucketClientSole,
		models.BucketTrust,
		models.BucketLLC,
	},
	models.ScenarioBothDeceased: {
		models.BucketClientProbate,
		models.BucketClientNonProbate,
		models.BucketClientJointOther,
		models.BucketSpouseProbate,
		models.BucketSpouseNonProbate,
		models.BucketSpouseJointOther,
		models.BucketTrust,
		models.BucketLLC,
	},
}

// ParseScenarioKind validates a scenario kind from a request
func ParseScenarioKind(s string) (models.ScenarioKind, error) {
	kind := models.ScenarioKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := bucketLayouts[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
	}
	return kind, nil
}

// scenarioBuilder accumulates placements into a container
type scenarioBuilder struct {
	container *models.ScenarioContainer
	index     map[models.BucketKey]int
}

func newScenarioBuilder(kind models.ScenarioKind, clientName, spouseName string) *scenarioBuilder {
	layout := bucketLayouts[kind]
	b := &scenarioBuilder{
		container: &models.ScenarioContainer{
			Kind:        kind,
			ClientName:  clientName,
			SpouseName:  spouseName,
			Buckets:     make([]models.Bucket, 0, len(layout)),
			Diagnostics: []models.Warning{},
		},
		index: make(map[models.BucketKey]int, len(layout)),
	}
	for _, key := range layout {
		b.bucket(key)
	}
	return b
}

func (b *scenarioBuilder) bucket(key models.BucketKey) *models.Bucket {
	if i, ok := b.index[key]; ok {
		return &b.container.Buckets[i]
	}
	b.index[key] = len(b.container.Buckets)
	b.container.Buckets = append(b.container.Buckets, models.Bucket{Key: key, Assets: []models.ScenarioAsset{}})
	return &b.container.Buckets[len(b.container.Buckets)-1]
}

func (b *scenarioBuilder) place(p placement) {
	bucket := b.bucket(p.bucket)
	bucket.Assets = append(bucket.Assets, p.entry)
}

func (b *scenarioBuilder) diagnose(w *models.Warning) {
	if w != nil {
		b.container.Diagnostics = append(b.container.Diagnostics, *w)
	}
}

// finish computes bucket totals and the grand total
func (b *scenarioBuilder) finish() *models.ScenarioContainer {
	var grand float64
	for i := range b.container.Buckets {
		var total float64
		for _, a := range b.container.Buckets[i].Assets {
			total += a.CalculatedValue
		}
		b.container.Buckets[i].Total = total
		grand += total
	}
	b.container.GrandTotal = grand
	return b.container
}

func displayName(name, fallback string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return fallback
}

// GenerateScenario classifies every asset for the given death order and
// returns a new container. It has no side effects beyond logging, and the
// same inputs always produce the same container. A nil asset slice means the
// assets were never loaded and returns ErrNoAssetData; an empty slice is a
// valid, empty estate.
func GenerateScenario(kind models.ScenarioKind, assets []models.Asset, clientName, spouseName string) (*models.ScenarioContainer, error) {
	if assets == nil {
		return nil, ErrNoAssetData
	}
	if _, ok := bucketLayouts[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, kind)
	}

	clientName = displayName(clientName, "Client")
	spouseName = displayName(spouseName, "Spouse")
	b := newScenarioBuilder(kind, clientName, spouseName)

	switch kind {
	case models.ScenarioClientFirst:
		for _, a := range assets {
			placements, diag := routeAsset(a, decedentClient, spouseName)
			b.diagnose(diag)
			for _, p := range placements {
				b.place(p)
			}
		}
	case models.ScenarioSpouseFirst:
		for _, a := range assets {
			placements, diag := routeAsset(a, decedentSpouse, clientName)
			b.diagnose(diag)
			for _, p := range placements {
				b.place(p)
			}
		}
	case models.ScenarioBothDeceased:
		generateBothDeceased(b, assets, clientName, spouseName)
	}

	container := b.finish()
	if kind == models.ScenarioBothDeceased {
		container.HeirDistributions = BuildHeirDistributions(container, assets)
	}
	return container, nil
}

// generateBothDeceased models the client dying first and the spouse second.
// Whatever the first pass leaves with the spouse is routed again with the
// spouse as decedent, so each dollar is placed exactly once.
func generateBothDeceased(b *scenarioBuilder, assets []models.Asset, clientName, spouseName string) {
	for _, a := range assets {
		first, diag := routeAsset(a, decedentClient, spouseName)
		b.diagnose(diag)
		for _, p := range first {
			if p.carry == nil {
				b.place(p)
				continue
			}
			second, diag := routeAsset(*p.carry, decedentSpouse, clientName)
			b.diagnose(diag)
			for _, q := range second {
				b.place(q)
			}
		}
	}
}
