package query

import "github.com/dmitrijs2005/blogadmin/internal/server/models"

type PostStats struct {
	Total      int         `json:"total"`
	Published  int         `json:"published"`
	Draft      int         `json:"draft"`
	ByAuthor   map[int]int `json:"byAuthor"`
	TotalTags  int         `json:"totalTags"`
	UniqueTags []string    `json:"uniqueTags"`
}

// SummarizePosts counts posts by status and author. UniqueTags keeps first
// occurrence order and is case-sensitive.
func SummarizePosts(posts []models.Post) PostStats {
	stats := PostStats{ByAuthor: map[int]int{}, UniqueTags: []string{}}
	seen := map[string]bool{}

	for _, p := range posts {
		stats.Total++
		switch p.Status {
		case models.PostStatusPublished:
			stats.Published++
		case models.PostStatusDraft:
			stats.Draft++
		}
		stats.ByAuthor[p.AuthorID]++
		stats.TotalTags += len(p.Tags)
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				stats.UniqueTags = append(stats.UniqueTags, tag)
			}
		}
	}
	return stats
}

type NotificationStats struct {
	Total  int                             `json:"total"`
	Unread int                             `json:"unread"`
	Read   int                             `json:"read"`
	ByType map[models.NotificationType]int `json:"byType"`
}

func SummarizeNotifications(list []models.Notification) NotificationStats {
	stats := NotificationStats{ByType: map[models.NotificationType]int{}}
	for _, n := range list {
		stats.Total++
		if n.Read {
			stats.Read++
		} else {
			stats.Unread++
		}
		stats.ByType[n.Type]++
	}
	return stats
}

// UnreadCount is the length of the unread-only view.
func UnreadCount(list []models.Notification) int {
	return len(Notifications(list, Params{UnreadOnly: true}))
}
