package services

import (
	"strings"

	"github.com/epeers/estateplan/internal/models"
)

// ResolveHeirs builds the fiduciary pool from the client's heirs, the
// spouse's heirs and manually added entries, in that order. Entries are
// deduplicated by id and the first occurrence wins. Entries without an id
// cannot be referenced by a designation and are skipped.
func ResolveHeirs(clientHeirs, spouseHeirs []models.Heir, manual []models.FiduciaryPoolMember) []models.FiduciaryPoolMember {
	pool := make([]models.FiduciaryPoolMember, 0, len(clientHeirs)+len(spouseHeirs)+len(manual))
	seen := make(map[string]struct{}, cap(pool))

	add := func(m models.FiduciaryPoolMember) {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		m.ID = id
		pool = append(pool, m)
	}

	for _, h := range clientHeirs {
		add(heirToPoolMember(h, models.PoolSourceClient))
	}
	for _, h := range spouseHeirs {
		add(heirToPoolMember(h, models.PoolSourceSpouse))
	}
	for _, m := range manual {
		m.Source = models.PoolSourceManual
		add(m)
	}

	return pool
}

func heirToPoolMember(h models.Heir, source models.PoolSource) models.FiduciaryPoolMember {
	t := h.Type
	if t == "" {
		t = models.HeirOther
	}
	return models.FiduciaryPoolMember{
		ID:       h.ID,
		Name:     strings.TrimSpace(h.Name),
		Type:     t,
		Source:   source,
		IsEntity: t == models.HeirCharity,
	}
}

// PoolIndex returns the pool keyed by member id
func PoolIndex(pool []models.FiduciaryPoolMember) map[string]models.FiduciaryPoolMember {
	idx := make(map[string]models.FiduciaryPoolMember, len(pool))
	for _, m := range pool {
		idx[m.ID] = m
	}
	return idx
}
