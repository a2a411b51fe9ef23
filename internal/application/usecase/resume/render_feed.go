package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/pkg/logger"
)

const feedItemLimit = DefaultListLimit

// RenderFeedUseCase publishes the recent render log as a syndication feed.
type RenderFeedUseCase struct {
	list   *ListRendersUseCase
	logger logger.Logger
	now    func() time.Time
}

func NewRenderFeedUseCase(list *ListRendersUseCase, log logger.Logger) *RenderFeedUseCase {
	return &RenderFeedUseCase{list: list, logger: log, now: time.Now}
}

type RenderFeedInput struct {
	// BaseURL is the public origin used for feed and entry links.
	BaseURL string
}

func (uc *RenderFeedUseCase) Execute(ctx context.Context, input RenderFeedInput) (*feeds.Feed, error) {
	out, err := uc.list.Execute(ctx, ListRendersInput{Limit: feedItemLimit})
	if err != nil {
		return nil, err
	}

	listURL := input.BaseURL + "/api/resume/renders"
	feed := &feeds.Feed{
		Id:          listURL,
		Title:       "Resume Studio - Renders",
		Link:        &feeds.Link{Href: listURL},
		Description: "Recent résumé render outcomes.",
		Author:      &feeds.Author{Name: "resume-studio"},
		Created:     uc.now().UTC(),
	}
	if len(out.Entries) > 0 {
		feed.Updated = out.Entries[0].OccurredAt
	}

	feed.Items = make([]*feeds.Item, 0, len(out.Entries))
	for _, e := range out.Entries {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          "urn:uuid:" + e.ID.String(),
			Title:       fmt.Sprintf("%s render %s", e.Template, e.Status),
			Link:        &feeds.Link{Href: listURL},
			Description: fmt.Sprintf("%d bytes in %d ms", e.SizeBytes, e.DurationMs),
			Created:     e.OccurredAt,
		})
	}

	uc.logger.Debug("Render feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
