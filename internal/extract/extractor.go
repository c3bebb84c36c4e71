// Package extract turns raw ticket-page HTML into a partial event record.
//
// It is a prioritized pipeline of pure per-field steps. Each step either
// produces a value or yields to the next one; malformed or missing markup
// never raises, every field independently degrades to its safest default.
// The caller confirms the inferred date with the user and fills whatever
// the page did not provide.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// UntitledPlaceholder is used when neither the page nor the clipboard
// yields a title.
const UntitledPlaceholder = "Unbenannt"

// marketingSuffix and the stray entity are stripped from <title> content
// before it is used as an event title.
const marketingSuffix = " | Tickets – eventim.de"

// Pre-compiled patterns for ticket-page markup.
var (
	titleTag   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	ogTitleTag = regexp.MustCompile(`(?i)<meta\s+property="og:title"\s+content="([^"]+)"`)

	// og:title shape: TITLE @ VENUE | CITY - anything. The first " - "
	// occurrence bounds the city so trailing marketing text is ignored.
	ogTitleShape = regexp.MustCompile(`^(.*?) @ (.*?) \| (.*?) - `)

	detailDateMarker = regexp.MustCompile(`event-detail-date__date">([^<]+)`)
	detailTimeMarker = regexp.MustCompile(`event-detail-date__time">([^<]+)`)

	descriptionDate = regexp.MustCompile(`(?i)<meta\s+name="description"\s+content="[^"]*?(\d{2})\.(\d{2})\.(\d{4})\s+(\d{2}):(\d{2})`)

	dateToken = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	timeToken = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// Extract runs the field pipelines over raw HTML. sourceURL is used for
// diagnostics only; titleHint is the clipboard-derived fallback title.
// The result is always usable: Title falls back to the hint or a
// placeholder, everything else may be absent.
func Extract(html, sourceURL, titleHint string) domain.ExtractedPage {
	page := domain.ExtractedPage{
		Title: extractTitle(html, titleHint),
	}

	if title, venue, city, ok := extractStructuredTitle(html); ok {
		// The og:title source is richer than <title>; it wins.
		page.Title = title
		page.Venue = venue
		page.City = city
	}

	page.CandidateDate = extractDetailDate(html)
	if page.CandidateDate == nil {
		page.CandidateDate = extractDescriptionDate(html)
	}

	logger.Debug("extracted page url=%s title=%q venue=%q city=%q dateFound=%t",
		sourceURL, page.Title, page.Venue, page.City, page.CandidateDate != nil)
	return page
}

// extractTitle takes the <title> content, strips the marketing suffix,
// decodes entities and keeps the part before a literal " in ". Falls back
// to the clipboard hint, then the placeholder.
func extractTitle(html, titleHint string) string {
	if m := titleTag.FindStringSubmatch(html); m != nil {
		raw := strings.ReplaceAll(m[1], marketingSuffix, "")
		raw = strings.TrimSpace(domain.DecodeEntities(raw))
		if raw != "" {
			before, _, _ := strings.Cut(raw, " in ")
			if title := strings.TrimSpace(before); title != "" {
				return title
			}
		}
	}
	if hint := strings.TrimSpace(titleHint); hint != "" {
		return hint
	}
	return UntitledPlaceholder
}

// extractStructuredTitle parses the og:title meta tag when it carries the
// TITLE @ VENUE | CITY shape. Both separators must be present before the
// shape pattern is even attempted.
func extractStructuredTitle(html string) (title, venue, city string, ok bool) {
	m := ogTitleTag.FindStringSubmatch(html)
	if m == nil {
		return "", "", "", false
	}
	content := m[1]
	if !strings.Contains(content, " @ ") || !strings.Contains(content, " | ") {
		return "", "", "", false
	}
	shape := ogTitleShape.FindStringSubmatch(content)
	if shape == nil {
		return "", "", "", false
	}
	return strings.TrimSpace(domain.DecodeEntities(shape[1])),
		strings.TrimSpace(domain.DecodeEntities(shape[2])),
		strings.TrimSpace(domain.DecodeEntities(shape[3])),
		true
}

// extractDetailDate combines the proximate human-readable date and time
// markers into a civil candidate. Both markers must be present and carry
// well-formed tokens.
func extractDetailDate(html string) *domain.CivilDateTime {
	dm := detailDateMarker.FindStringSubmatch(html)
	tm := detailTimeMarker.FindStringSubmatch(html)
	if dm == nil || tm == nil {
		return nil
	}

	date := dateToken.FindStringSubmatch(strings.TrimSpace(dm[1]))
	clock := timeToken.FindStringSubmatch(strings.TrimSpace(tm[1]))
	if date == nil || clock == nil {
		return nil
	}

	return civilFromTokens(date[1], date[2], date[3], clock[1], clock[2])
}

// extractDescriptionDate is the fallback date source: a DD.MM.YYYY HH:MM
// substring embedded in the meta description tag.
func extractDescriptionDate(html string) *domain.CivilDateTime {
	m := descriptionDate.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return civilFromTokens(m[1], m[2], m[3], m[4], m[5])
}

func civilFromTokens(day, month, year, hour, minute string) *domain.CivilDateTime {
	d, _ := strconv.Atoi(day)
	mo, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)
	return &domain.CivilDateTime{Year: y, Month: mo, Day: d, Hour: h, Minute: mi}
}
