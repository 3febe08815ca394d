package auth

import (
	"booru/config"
	"booru/model"
)

// PrivilegeViewAnyEmail gates reading other users' email addresses.
const PrivilegeViewAnyEmail = "users:edit:any:email"

// RankNames lists every rank name from lowest to highest privilege. Slice
// order is the comparison order, so index == model.Rank value.
var RankNames = []string{
	"anonymous",
	"nobody",
	"regular",
	"power",
	"moderator",
	"administrator",
}

// sentinel ranks are never assignable to a real account
var sentinelRanks = map[model.Rank]bool{
	model.RankAnonymous: true,
	model.RankNobody:    true,
}

// RankFromName resolves a rank name to its enum value.
func RankFromName(name string) (model.Rank, bool) {
	for i, n := range RankNames {
		if n == name {
			return model.Rank(i), true
		}
	}
	return 0, false
}

// RankName returns the external name of a rank.
func RankName(r model.Rank) string {
	if r < 0 || int(r) >= len(RankNames) {
		return ""
	}
	return RankNames[r]
}

// IsSentinelRank reports whether the rank is one of the non-assignable
// placeholder ranks (anonymous, nobody).
func IsSentinelRank(r model.Rank) bool {
	return sentinelRanks[r]
}

// HasPrivilege reports whether the user's rank meets the minimal rank
// configured for the privilege. Unknown privileges and nil users never pass.
func HasPrivilege(cfg *config.Config, user *model.User, privilege string) bool {
	if user == nil {
		return false
	}
	rankName, ok := cfg.Privileges[privilege]
	if !ok {
		return false
	}
	required, ok := RankFromName(rankName)
	if !ok {
		return false
	}
	return user.Rank >= required
}
