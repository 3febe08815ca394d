package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booru/model"
)

func seedTags(env *testEnv, tags ...model.Tag) {
	env.tags.tags = append(env.tags.tags, tags...)
	for _, tag := range tags {
		env.blocklist.tags[tag.ID] = tag
	}
}

func entryTagIDs(entries []model.BlocklistEntry) []uint64 {
	var ids []uint64
	for _, e := range entries {
		ids = append(ids, e.TagID)
	}
	return ids
}

func TestPlanBlocklistDiff(t *testing.T) {
	env := newTestEnv()
	tagA := model.Tag{ID: 1, Name: "a"}
	tagB := model.Tag{ID: 2, Name: "b"}
	tagC := model.Tag{ID: 3, Name: "c"}
	tagD := model.Tag{ID: 4, Name: "d"}
	seedTags(env, tagA, tagB, tagC, tagD)
	user := &model.User{ID: 10}
	env.blocklist.entries = []model.BlocklistEntry{
		{UserID: 10, TagID: 1},
		{UserID: 10, TagID: 2},
		{UserID: 10, TagID: 3},
	}

	plan, err := env.svc.PlanBlocklist(user, []model.Tag{tagB, tagD})
	require.NoError(t, err)

	assert.Equal(t, []uint64{4}, entryTagIDs(plan.Additions))
	assert.ElementsMatch(t, []uint64{1, 3}, entryTagIDs(plan.Removals))
}

func TestPlanBlocklistExplicitEmptyTarget(t *testing.T) {
	env := newTestEnv()
	user := &model.User{ID: 10}

	// explicit empty list, not nil: no defaults, nothing to do
	plan, err := env.svc.PlanBlocklist(user, []model.Tag{})
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestPlanBlocklistNilTargetSeedsDefaults(t *testing.T) {
	env := newTestEnv()
	env.cfg.Users.DefaultTagBlocklist = "gore spiders"
	gore := model.Tag{ID: 5, Name: "gore"}
	spiders := model.Tag{ID: 6, Name: "spiders"}
	seedTags(env, gore, spiders)
	user := &model.User{ID: 10}
	// a pre-existing entry must not turn into a removal on the defaults path
	env.blocklist.entries = []model.BlocklistEntry{{UserID: 10, TagID: 99}}

	plan, err := env.svc.PlanBlocklist(user, nil)
	require.NoError(t, err)

	assert.Equal(t, []uint64{5, 6}, entryTagIDs(plan.Additions))
	assert.Empty(t, plan.Removals)
}

func TestPlanBlocklistNoDefaultsConfigured(t *testing.T) {
	env := newTestEnv()
	env.cfg.Users.DefaultTagBlocklist = ""
	user := &model.User{ID: 10}

	plan, err := env.svc.PlanBlocklist(user, nil)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestPlanBlocklistKeepsTargetOrder(t *testing.T) {
	env := newTestEnv()
	user := &model.User{ID: 10}
	target := []model.Tag{{ID: 9}, {ID: 2}, {ID: 7}, {ID: 2}}

	plan, err := env.svc.PlanBlocklist(user, target)
	require.NoError(t, err)

	// caller order preserved, duplicate target tags staged once
	assert.Equal(t, []uint64{9, 2, 7}, entryTagIDs(plan.Additions))
}

func TestSetBlocklistRoundTrip(t *testing.T) {
	env := newTestEnv()
	tagA := model.Tag{ID: 1, Name: "a"}
	tagB := model.Tag{ID: 2, Name: "b"}
	tagD := model.Tag{ID: 4, Name: "d"}
	seedTags(env, tagA, tagB, tagD)
	user := &model.User{ID: 10}
	env.blocklist.entries = []model.BlocklistEntry{
		{UserID: 10, TagID: 1},
		{UserID: 10, TagID: 2},
	}

	_, err := env.svc.SetBlocklist(user, []model.Tag{tagB, tagD})
	require.NoError(t, err)

	got, err := env.svc.Blocklist(user)
	require.NoError(t, err)
	var ids []uint64
	for _, tag := range got {
		ids = append(ids, tag.ID)
	}
	assert.ElementsMatch(t, []uint64{2, 4}, ids)

	// a second reconciliation against the same target is a no-op
	plan, err := env.svc.PlanBlocklist(user, []model.Tag{tagB, tagD})
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestDeleteBlocklistCascades(t *testing.T) {
	env := newTestEnv()
	env.blocklist.entries = []model.BlocklistEntry{
		{UserID: 10, TagID: 1},
		{UserID: 10, TagID: 2},
		{UserID: 11, TagID: 1},
	}

	require.NoError(t, env.svc.DeleteBlocklistOfUser(&model.User{ID: 10}))
	assert.Len(t, env.blocklist.entries, 1)
	assert.Equal(t, uint64(11), env.blocklist.entries[0].UserID)

	require.NoError(t, env.svc.DeleteBlocklistOfTag(&model.Tag{ID: 1}))
	assert.Empty(t, env.blocklist.entries)
}
