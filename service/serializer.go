package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"booru/internal/auth"
	"booru/internal/errs"
	"booru/model"
)

// userFields lists every field the serializer can emit, in output order.
// Field names mirror the API's camelCase contract.
var userFields = []string{
	"name",
	"creationTime",
	"lastLoginTime",
	"version",
	"rank",
	"blocklist",
	"avatarStyle",
	"avatarUrl",
	"commentCount",
	"uploadedPostCount",
	"favoritePostCount",
	"likedPostCount",
	"dislikedPostCount",
	"email",
}

// SerializeUser maps a user into an output record restricted to the
// requested fields; an empty field list emits everything. Email and the
// like/dislike counts pass through the visibility policy. A nil user
// produces a nil record.
func (s *UserService) SerializeUser(user, viewer *model.User, fields []string, forceShowEmail bool) (map[string]any, error) {
	if user == nil {
		return nil, nil
	}
	if len(fields) == 0 {
		fields = userFields
	}
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		switch field {
		case "name":
			out[field] = user.Name
		case "creationTime":
			out[field] = user.CreationTime
		case "lastLoginTime":
			if user.LastLoginTime != nil {
				out[field] = *user.LastLoginTime
			} else {
				out[field] = nil
			}
		case "version":
			out[field] = user.Version
		case "rank":
			out[field] = auth.RankName(user.Rank)
		case "blocklist":
			tags, err := s.Blocklist(user)
			if err != nil {
				return nil, err
			}
			out[field] = serializeTags(tags)
		case "avatarStyle":
			out[field] = user.AvatarStyle
		case "avatarUrl":
			out[field] = s.AvatarURL(user)
		case "commentCount":
			out[field] = user.CommentCount
		case "uploadedPostCount":
			out[field] = user.UploadedPostCount
		case "favoritePostCount":
			out[field] = user.FavoritePostCount
		case "likedPostCount":
			out[field] = visibleOwnCount(user, viewer, user.LikedPostCount)
		case "dislikedPostCount":
			out[field] = visibleOwnCount(user, viewer, user.DislikedPostCount)
		case "email":
			out[field] = s.visibleEmail(user, viewer, forceShowEmail)
		default:
			return nil, errs.Invalid("fields", errs.ConstraintOneOf, "unknown field %q", field)
		}
	}
	return out, nil
}

// SerializeMicroUser emits the compact reference subset, regardless of any
// field list the caller may have collected elsewhere.
func (s *UserService) SerializeMicroUser(user, viewer *model.User) (map[string]any, error) {
	return s.SerializeUser(user, viewer, []string{"name", "avatarUrl"}, false)
}

// AvatarURL computes the public avatar URL. Gravatar style hashes the
// lowercased email (name when no email is set); manual style points into
// the public data URL at the derived avatar path.
func (s *UserService) AvatarURL(user *model.User) string {
	if user.AvatarStyle == model.AvatarGravatar {
		basis := user.Email
		if basis == "" {
			basis = user.Name
		}
		sum := md5.Sum([]byte(strings.ToLower(basis)))
		return fmt.Sprintf("https://gravatar.com/avatar/%s?d=retro&s=%d",
			hex.EncodeToString(sum[:]), s.cfg.Thumbnails.AvatarWidth)
	}
	return strings.TrimRight(s.cfg.DataURL, "/") + "/" + AvatarPath(user.Name)
}

// visibleEmail applies the email visibility policy. A hidden email is the
// literal false, not an omitted key; an absent email serializes as nil.
func (s *UserService) visibleEmail(user, viewer *model.User, forceShow bool) any {
	if !forceShow &&
		(viewer == nil || viewer.ID != user.ID) &&
		!auth.HasPrivilege(s.cfg, viewer, auth.PrivilegeViewAnyEmail) {
		return false
	}
	if user.Email == "" {
		return nil
	}
	return user.Email
}

// visibleOwnCount hides like/dislike tallies from everyone but the subject.
func visibleOwnCount(user, viewer *model.User, count int) any {
	if viewer == nil || viewer.ID != user.ID {
		return false
	}
	return count
}

func serializeTags(tags []model.Tag) []map[string]any {
	out := make([]map[string]any, 0, len(tags))
	for _, tag := range tags {
		out = append(out, map[string]any{
			"names":    []string{tag.Name},
			"category": tag.Category,
			"usages":   tag.Usages,
		})
	}
	return out
}
