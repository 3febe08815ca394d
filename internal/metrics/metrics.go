package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	userOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booru_user_operations_total",
		Help: "Number of account operations grouped by operation and status.",
	}, []string{"op", "status"})

	passwordResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booru_password_resets_total",
		Help: "Number of password resets grouped by status.",
	}, []string{"status"})

	blocklistReconciles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booru_blocklist_reconciliations_total",
		Help: "Number of blocklist reconciliations grouped by status.",
	}, []string{"status"})

	avatarUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booru_avatar_uploads_total",
		Help: "Number of manual avatar uploads grouped by status.",
	}, []string{"status"})
)

// IncUserOp increments the account-operation counter.
func IncUserOp(op, status string) {
	userOps.WithLabelValues(op, status).Inc()
}

// IncPasswordReset increments the password-reset counter.
func IncPasswordReset(status string) {
	passwordResets.WithLabelValues(status).Inc()
}

// IncBlocklistReconcile increments the reconciliation counter.
func IncBlocklistReconcile(status string) {
	blocklistReconciles.WithLabelValues(status).Inc()
}

// IncAvatarUpload increments the avatar-upload counter.
func IncAvatarUpload(status string) {
	avatarUploads.WithLabelValues(status).Inc()
}
