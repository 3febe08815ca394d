package service

import (
	"strings"

	"booru/internal/metrics"
	"booru/model"
)

// BlocklistPlan is a computed reconciliation: the rows to insert and the
// rows to delete to move the persisted blocklist to the target set.
// Computing and applying are separate steps so the diff logic is testable
// without a live store.
type BlocklistPlan struct {
	Additions []model.BlocklistEntry
	Removals  []model.BlocklistEntry
}

// Empty reports whether applying the plan would change nothing.
func (p BlocklistPlan) Empty() bool {
	return len(p.Additions) == 0 && len(p.Removals) == 0
}

// PlanBlocklist computes the plan for the given target set. A nil target
// means "seed the configured defaults" and is only used at account-creation
// time; an explicit empty slice clears the blocklist. Additions keep the
// caller-provided target order.
func (s *UserService) PlanBlocklist(user *model.User, target []model.Tag) (BlocklistPlan, error) {
	var plan BlocklistPlan
	if target == nil {
		names := strings.Fields(s.cfg.Users.DefaultTagBlocklist)
		if len(names) == 0 {
			return plan, nil
		}
		tags, err := s.tags.FindByExactNames(names)
		if err != nil {
			return plan, err
		}
		for _, tag := range tags {
			plan.Additions = append(plan.Additions, model.BlocklistEntry{UserID: user.ID, TagID: tag.ID})
		}
		return plan, nil
	}

	current, err := s.blocklist.ListByUser(user.ID)
	if err != nil {
		return plan, err
	}
	targetIDs := make(map[uint64]bool, len(target))
	for _, tag := range target {
		targetIDs[tag.ID] = true
	}
	currentIDs := make(map[uint64]bool, len(current))
	for _, entry := range current {
		currentIDs[entry.TagID] = true
		if !targetIDs[entry.TagID] {
			plan.Removals = append(plan.Removals, entry)
		}
	}
	staged := make(map[uint64]bool, len(target))
	for _, tag := range target {
		if currentIDs[tag.ID] || staged[tag.ID] {
			continue
		}
		staged[tag.ID] = true
		plan.Additions = append(plan.Additions, model.BlocklistEntry{UserID: user.ID, TagID: tag.ID})
	}
	return plan, nil
}

// ApplyBlocklist persists a previously computed plan.
func (s *UserService) ApplyBlocklist(plan BlocklistPlan) error {
	for _, entry := range plan.Removals {
		if err := s.blocklist.Remove(entry.UserID, entry.TagID); err != nil {
			return err
		}
	}
	for _, entry := range plan.Additions {
		if err := s.blocklist.Add(entry); err != nil {
			return err
		}
	}
	return nil
}

// SetBlocklist computes and applies the reconciliation in one call.
func (s *UserService) SetBlocklist(user *model.User, target []model.Tag) (BlocklistPlan, error) {
	plan, err := s.PlanBlocklist(user, target)
	if err != nil {
		metrics.IncBlocklistReconcile("error")
		return plan, err
	}
	if err := s.ApplyBlocklist(plan); err != nil {
		metrics.IncBlocklistReconcile("error")
		return plan, err
	}
	metrics.IncBlocklistReconcile("success")
	return plan, nil
}

// Blocklist returns the user's blocklisted tags in stable (tag id) order.
func (s *UserService) Blocklist(user *model.User) ([]model.Tag, error) {
	return s.blocklist.TagsByUser(user.ID)
}

// DeleteBlocklistOfUser drops every blocklist row the user owns, as part of
// destroying the account.
func (s *UserService) DeleteBlocklistOfUser(user *model.User) error {
	return s.blocklist.DeleteByUser(user.ID)
}

// DeleteBlocklistOfTag drops every blocklist row referencing the tag, as
// part of destroying the tag.
func (s *UserService) DeleteBlocklistOfTag(tag *model.Tag) error {
	return s.blocklist.DeleteByTag(tag.ID)
}
