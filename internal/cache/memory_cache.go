package cache

import (
	"sync"
	"time"

	"github.com/epeers/estateplan/internal/models"
)

// MemoryCache keeps the last computed scenario and validation per client.
// Entries are stamped with the client's updated time; any write to the
// client makes them stale and they are replaced whole, never patched.
type MemoryCache struct {
	scenarios    map[scenarioKey]scenarioEntry
	validations  map[int64]validationEntry
	scenarioMu   sync.RWMutex
	validationMu sync.RWMutex
	ttl          time.Duration
}

type scenarioKey struct {
	clientID int64
	kind     models.ScenarioKind
}

type scenarioEntry struct {
	scenario  *models.ScenarioContainer
	version   time.Time
	fetchedAt time.Time
}

type validationEntry struct {
	result    models.EstatePlanValidation
	version   time.Time
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache. A zero ttl disables expiry
// by age; entries still go stale when the client's version changes.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		scenarios:   make(map[scenarioKey]scenarioEntry),
		validations: make(map[int64]validationEntry),
		ttl:         ttl,
	}
}

func (c *MemoryCache) fresh(version, entryVersion, fetchedAt time.Time) bool {
	if !version.Equal(entryVersion) {
		return false
	}
	return c.ttl <= 0 || time.Since(fetchedAt) <= c.ttl
}

// GetScenario retrieves a cached scenario if it was built from the given
// client version and has not expired
func (c *MemoryCache) GetScenario(clientID int64, kind models.ScenarioKind, version time.Time) (*models.ScenarioContainer, bool) {
	c.scenarioMu.RLock()
	defer c.scenarioMu.RUnlock()

	entry, exists := c.scenarios[scenarioKey{clientID, kind}]
	if !exists || !c.fresh(version, entry.version, entry.fetchedAt) {
		return nil, false
	}
	return entry.scenario, true
}

// SetScenario caches a scenario built from the given client version
func (c *MemoryCache) SetScenario(clientID int64, kind models.ScenarioKind, version time.Time, scenario *models.ScenarioContainer) {
	c.scenarioMu.Lock()
	defer c.scenarioMu.Unlock()

	c.scenarios[scenarioKey{clientID, kind}] = scenarioEntry{
		scenario:  scenario,
		version:   version,
		fetchedAt: time.Now(),
	}
}

// GetValidation retrieves a cached validation result if fresh
func (c *MemoryCache) GetValidation(clientID int64, version time.Time) (models.EstatePlanValidation, bool) {
	c.validationMu.RLock()
	defer c.validationMu.RUnlock()

	entry, exists := c.validations[clientID]
	if !exists || !c.fresh(version, entry.version, entry.fetchedAt) {
		return models.EstatePlanValidation{}, false
	}
	return entry.result, true
}

// SetValidation caches a validation result
func (c *MemoryCache) SetValidation(clientID int64, version time.Time, result models.EstatePlanValidation) {
	c.validationMu.Lock()
	defer c.validationMu.Unlock()

	c.validations[clientID] = validationEntry{
		result:    result,
		version:   version,
		fetchedAt: time.Now(),
	}
}

// InvalidateClient removes everything cached for a client
func (c *MemoryCache) InvalidateClient(clientID int64) {
	c.scenarioMu.Lock()
	for key := range c.scenarios {
		if key.clientID == clientID {
			delete(c.scenarios, key)
		}
	}
	c.scenarioMu.Unlock()

	c.validationMu.Lock()
	delete(c.validations, clientID)
	c.validationMu.Unlock()
}
