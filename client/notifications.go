package client

import "localaid_server/models"

// NotificationCenter is the reconciled notification bell. Both input paths —
// the initial fetch and incremental pushes — converge on one held list, so
// the unread count is a single derivation rather than two counters that can
// drift across reconnects.
type NotificationCenter struct {
	items []models.Notification
}

// NewNotificationCenter creates an empty bell state.
func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{}
}

// LoadInitial merges a fetched snapshot (newest first). Pushes that arrived
// before the fetch returned are kept; overlap dedupes by id.
func (nc *NotificationCenter) LoadInitial(fetched []models.Notification) {
	pushed := nc.items
	nc.items = append([]models.Notification(nil), fetched...)
	for i := len(pushed) - 1; i >= 0; i-- {
		nc.prependIfAbsent(pushed[i])
	}
}

// ApplyPush prepends a pushed notification unless already held.
func (nc *NotificationCenter) ApplyPush(n models.Notification) {
	nc.prependIfAbsent(n)
}

// MarkRead flips the read flag for the given ids locally. Idempotent:
// re-marking changes nothing.
func (nc *NotificationCenter) MarkRead(ids ...string) {
	for _, id := range ids {
		for i := range nc.items {
			if nc.items[i].NotificationID == id {
				nc.items[i].Read = true
			}
		}
	}
}

// Unread derives the badge count from the held list.
func (nc *NotificationCenter) Unread() int {
	count := 0
	for _, n := range nc.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notifications returns the held list, newest first.
func (nc *NotificationCenter) Notifications() []models.Notification {
	return nc.items
}

func (nc *NotificationCenter) prependIfAbsent(n models.Notification) {
	for _, existing := range nc.items {
		if existing.NotificationID == n.NotificationID {
			return
		}
	}
	nc.items = append([]models.Notification{n}, nc.items...)
}
