package docket

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// attyMarker is the attorney label as printed on the docket. The
// marker plus its separator is always six characters wide.
const (
	attyMarker    = "ATTY"
	attyMarkerLen = 6
)

var (
	dateLayouts = []string{"Jan 2, 2006", "January 2, 2006"}
	timeLayouts = []string{"03:04 PM", "3:04 PM"}
)

// ExtractRecord converts one qualifying entry into a Record. The
// docket's shape is rigid: any entry that does not conform is an error
// and aborts the run, never a silently skipped record.
func ExtractRecord(e Entry) (*Record, error) {
	hearing, err := parseHearing(e.Date, e.Time)
	if err != nil {
		return nil, err
	}

	frags := Normalize(e.Fragments)
	if len(frags) < 3 {
		return nil, fmt.Errorf("entry has %d usable fragments, need at least 3", len(frags))
	}

	title, ok := TrimLineNumber(frags[0])
	if !ok {
		return nil, fmt.Errorf("no docket line number in %q", frags[0])
	}

	digits := MatchDigitRun(frags[1])
	if digits == "" {
		return nil, fmt.Errorf("no case number in %q", frags[1])
	}
	caseNumber, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("parsing case number %q: %w", digits, err)
	}

	plaintiff, plaintiffAtty, err := SplitPartyAttorney(frags[2])
	if err != nil {
		return nil, fmt.Errorf("plaintiff line: %w", err)
	}

	sep := -1
	for i := 3; i < len(frags); i++ {
		if HasPartySeparator(frags[i]) {
			sep = i
			break
		}
	}
	if sep == -1 || sep+1 >= len(frags) {
		return nil, fmt.Errorf("no defendant after VS. separator in case %d", caseNumber)
	}

	defendant, defendantAtty, err := SplitPartyAttorney(frags[sep+1])
	if err != nil {
		return nil, fmt.Errorf("defendant line: %w", err)
	}

	rec := &Record{
		Title:             title,
		CaseNumber:        caseNumber,
		Plaintiff:         plaintiff,
		PlaintiffAttorney: plaintiffAtty,
		DefendantAttorney: defendantAtty,
		Hearing:           hearing,
		Courtroom:         e.Courtroom,
	}

	// Co-debtor names matter only for pro se defendants; represented
	// ones are filtered out downstream and their names never reported.
	if defendantAtty == "" {
		rec.Defendants = append(rec.Defendants, defendant)
		for _, f := range frags[sep+2:] {
			rec.Defendants = append(rec.Defendants, strings.TrimSpace(f))
		}
	}

	return rec, nil
}

// SplitPartyAttorney splits a "<party> ATTY: <attorney>" fragment into
// its party and attorney names. An empty attorney name means the party
// appears pro se. The fragment must carry the ATTY marker.
func SplitPartyAttorney(fragment string) (party, attorney string, err error) {
	idx := strings.Index(fragment, attyMarker)
	if idx == -1 {
		return "", "", fmt.Errorf("no %s marker in %q", attyMarker, fragment)
	}

	party = strings.TrimSpace(fragment[:idx])
	if idx+attyMarkerLen < len(fragment) {
		attorney = strings.TrimSpace(fragment[idx+attyMarkerLen:])
	}
	return party, attorney, nil
}

// parseHearing combines the entry's date and time annotations into a
// single hearing timestamp.
func parseHearing(date, tod string) (time.Time, error) {
	d, err := parseFirst(dateLayouts, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing hearing date %q: %w", date, err)
	}
	t, err := parseFirst(timeLayouts, tod)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing hearing time %q: %w", tod, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}

func parseFirst(layouts []string, value string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
