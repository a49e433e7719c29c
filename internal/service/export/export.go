package export

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

type section struct {
	category *domain.Category
	entries  []*domain.Entry
}

// sections groups the list's entries by category in sort order, dropping empty
// categories. Entries within a section are newest first.
func (s *Service) sections(ctx context.Context, listID uuid.UUID) ([]section, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	cats, err := s.categories.ListByList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	entries, err := s.entries.ListByList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	byCategory := make(map[uuid.UUID][]*domain.Entry, len(cats))
	for _, e := range entries {
		byCategory[e.CategoryID] = append(byCategory[e.CategoryID], e)
	}

	slices.SortStableFunc(cats, func(a, b *domain.Category) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	out := make([]section, 0, len(cats))
	for _, c := range cats {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		slices.SortStableFunc(items, func(a, b *domain.Entry) int {
			return b.EntryDate.Compare(a.EntryDate)
		})
		out = append(out, section{category: c, entries: items})
	}
	return out, nil
}

// Markdown renders the list as a brag doc.
func (s *Service) Markdown(ctx context.Context, listID uuid.UUID) (string, error) {
	secs, err := s.sections(ctx, listID)
	if err != nil {
		return "", err
	}
	return renderMarkdown("Brag Doc", secs, false), nil
}

// Filename returns the download name for a markdown export made on day.
func Filename(day time.Time) string {
	return "brag-doc-" + day.Format(domain.DateLayout) + ".md"
}

// HTML renders the list as the shareable report.
func (s *Service) HTML(ctx context.Context, listID uuid.UUID) (string, error) {
	secs, err := s.sections(ctx, listID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(renderMarkdown("Task Tracker", secs, true)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	buf.WriteString(`<p style="color: #999; font-size: 12px;">Shared from Task Tracker</p>` + "\n")

	s.log.DebugContext(ctx, "export rendered",
		slog.String("list_id", listID.String()),
		slog.Int("sections", len(secs)),
	)
	return buf.String(), nil
}

func renderMarkdown(title string, secs []section, singleLine bool) string {
	lines := []string{"# " + title, ""}
	for _, sec := range secs {
		lines = append(lines, "## "+sec.category.Name, "")
		for _, e := range sec.entries {
			content := e.Content
			if singleLine {
				content = strings.Join(strings.Fields(content), " ")
			}
			lines = append(lines, fmt.Sprintf("- **%s** — %s", e.Day(), content))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
