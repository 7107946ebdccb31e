// Package profile owns the signed-in user's profile. The store is created
// once by the app builder and passed to whoever needs it; every read and
// write hands back an independent snapshot.
package profile

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"changemakers-go/internal/model"
)

const MinBioLength = 50

// ValidationError maps profile fields to their failure messages.
type ValidationError = model.ValidationError

// Patch carries the fields to change; nil fields are left alone.
type Patch struct {
	Username  *string   `json:"username,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

type Store struct {
	logger *zap.Logger

	mu      sync.RWMutex
	current model.Profile
}

func NewStore(initial model.Profile, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger, current: initial.Clone()}
}

func (s *Store) Snapshot() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies patch and returns the new snapshot. Nothing changes when
// the patched profile fails validation.
func (s *Store) Update(patch Patch) (model.Profile, error) {
	return s.mutate(func(p *model.Profile) {
		if patch.Username != nil {
			p.Username = strings.TrimSpace(*patch.Username)
		}
		if patch.Avatar != nil {
			p.Avatar = *patch.Avatar
		}
		if patch.Location != nil {
			p.Location = strings.TrimSpace(*patch.Location)
		}
		if patch.Bio != nil {
			p.Bio = strings.TrimSpace(*patch.Bio)
		}
		if patch.Email != nil {
			p.Email = strings.TrimSpace(*patch.Email)
		}
		if patch.Interests != nil {
			p.Interests = normalizeInterests(*patch.Interests)
		}
	})
}

// AddInterest appends interest unless it is blank or already present.
func (s *Store) AddInterest(interest string) (model.Profile, error) {
	interest = strings.TrimSpace(interest)
	return s.mutate(func(p *model.Profile) {
		if interest == "" || contains(p.Interests, interest) {
			return
		}
		p.Interests = append(p.Interests, interest)
	})
}

func (s *Store) RemoveInterest(interest string) (model.Profile, error) {
	return s.mutate(func(p *model.Profile) {
		kept := p.Interests[:0]
		for _, i := range p.Interests {
			if i != interest {
				kept = append(kept, i)
			}
		}
		p.Interests = kept
	})
}

func (s *Store) mutate(apply func(*model.Profile)) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	apply(&next)
	if err := Validate(next); err != nil {
		return s.current.Clone(), err
	}
	s.current = next
	s.logger.Debug("profile updated", zap.String("id", next.ID), zap.Int("interests", len(next.Interests)))
	return next.Clone(), nil
}

// Validate applies the edit-profile form rules.
func Validate(p model.Profile) error {
	fields := map[string]string{}
	if strings.TrimSpace(p.Username) == "" {
		fields["username"] = "Name is required"
	}
	if strings.TrimSpace(p.Location) == "" {
		fields["location"] = "Location is required"
	}
	bio := strings.TrimSpace(p.Bio)
	switch {
	case bio == "":
		fields["bio"] = "Bio is required"
	case len([]rune(bio)) < MinBioLength:
		fields["bio"] = fmt.Sprintf("Bio must be at least %d characters", MinBioLength)
	}
	if len(fields) > 0 {
		return &ValidationError{Kind: "profile", Fields: fields}
	}
	return nil
}

func normalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	for _, i := range in {
		i = strings.TrimSpace(i)
		if i == "" || contains(out, i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
