package docket

// Segmenter partitions one page's fragment sequence into entries. It
// is a two-state machine: before the page's first timestamp only the
// header date and courtroom matchers may fire, and every other
// fragment is boilerplate; after it, fragments are routed into entry
// groups delimited by hyphen separator lines.
type Segmenter struct{}

// NewSegmenter creates a segmenter. Segmenters are stateless across
// pages; every page starts with fresh carry-forward context.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// SegmentPage partitions a page into docket entries. Dates and
// courtroom tokens seen before the first timestamp become page-scoped
// context carried onto every entry; each timestamp becomes the current
// entry's time. Dates appearing after the first timestamp are free
// text inside an entry and never update the page context.
func (sg *Segmenter) SegmentPage(page Page) []Entry {
	var (
		pastFirstTimestamp bool
		date               string
		tod                string
		courtroom          string
		entries            []Entry
		current            []string
	)

	closeEntry := func() {
		entries = append(entries, Entry{
			Fragments: current,
			Date:      date,
			Time:      tod,
			Courtroom: courtroom,
		})
		current = nil
	}

	for i, frag := range page.Fragments {
		if t := MatchTime(frag); t != "" {
			tod = t
			pastFirstTimestamp = true
			continue
		}
		if !pastFirstTimestamp {
			if d := MatchDate(frag); d != "" {
				date = d
				continue
			}
			if c := MatchCourtroom(frag); c != "" {
				courtroom = c
			}
			// Anything else above the first timestamp is page
			// boilerplate.
			continue
		}

		switch {
		case IsSeparator(frag):
			closeEntry()
		case i == len(page.Fragments)-1:
			// The page's last fragment is a footer artifact; close the
			// entry without keeping it.
			closeEntry()
		default:
			current = append(current, frag)
		}
	}

	// A page with no timestamps never routed anything; emit its single
	// boilerplate group so the classifier can reject it. Otherwise an
	// open group only survives if it gathered fragments (a trailing
	// separator line leaves an empty one behind).
	if len(entries) == 0 || len(current) > 0 {
		closeEntry()
	}

	return entries
}
