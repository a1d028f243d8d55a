package farms

import (
	"fmt"
	"sync"

	"github.com/jrsteele09/greenos-console/credentials"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
)

// Selection is the farm list and the active farm. Only the active farm's id is persisted.
type Selection struct {
	store credentials.Store

	lock    sync.RWMutex
	farms   []Farm
	current *Farm
}

func NewSelection(store credentials.Store) *Selection {
	return &Selection{store: store}
}

// SetFarms replaces the list. There is no merge with the previous list.
func (s *Selection) SetFarms(list []Farm) {
	copied := append([]Farm(nil), list...)
	s.lock.Lock()
	defer s.lock.Unlock()
	s.farms = copied
}

// SetCurrentFarm persists farm.ID and makes it the active farm.
func (s *Selection) SetCurrentFarm(farm Farm) error {
	if err := s.store.Set(credentials.CurrentFarmIDKey, farm.ID); err != nil {
		return fmt.Errorf("persist current farm: %w", err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.current = &farm
	return nil
}

// SelectByID makes the listed farm with id the active one.
func (s *Selection) SelectByID(id string) (Farm, error) {
	s.lock.RLock()
	farm, ok := find(s.farms, id)
	s.lock.RUnlock()
	if !ok {
		return Farm{}, autherrors.Wrapf(autherrors.ErrFarmNotFound, "%s", id)
	}
	return farm, s.SetCurrentFarm(farm)
}

// Restore replaces the list and selects the farm whose id was persisted,
// falling back to the first farm. An empty list selects nothing.
func (s *Selection) Restore(list []Farm) (Farm, bool, error) {
	s.SetFarms(list)
	if len(list) == 0 {
		return Farm{}, false, nil
	}
	farm := list[0]
	if savedID, ok := s.store.Get(credentials.CurrentFarmIDKey); ok {
		if saved, found := find(list, savedID); found {
			farm = saved
		}
	}
	if err := s.SetCurrentFarm(farm); err != nil {
		return Farm{}, false, err
	}
	return farm, true, nil
}

func (s *Selection) Current() (Farm, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		return Farm{}, false
	}
	return *s.current, true
}

// CurrentID returns the active farm id or ErrNoFarmSelected.
func (s *Selection) CurrentID() (string, error) {
	farm, ok := s.Current()
	if !ok {
		return "", autherrors.ErrNoFarmSelected
	}
	return farm.ID, nil
}

func (s *Selection) Farms() []Farm {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return append([]Farm(nil), s.farms...)
}

// Reset drops the in-memory list and selection. The persisted id survives.
func (s *Selection) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.farms = nil
	s.current = nil
}

func find(list []Farm, id string) (Farm, bool) {
	for _, f := range list {
		if f.ID == id {
			return f, true
		}
	}
	return Farm{}, false
}
