package docket

import "time"

// Date and time layouts used in report rows.
const (
	rowDateLayout = "01/02/2006"
	rowTimeLayout = "03:04 PM"
)

// Reporter applies the final business filter and expands qualifying
// records into report rows.
type Reporter struct {
	weekday   time.Weekday
	hearingAt time.Duration // offset from midnight
	courtroom string
}

// NewReporter creates a reporter keeping hearings on the given weekday
// at exactly hour:minute in the given courtroom.
func NewReporter(weekday time.Weekday, hour, minute int, courtroom string) *Reporter {
	return &Reporter{
		weekday:   weekday,
		hearingAt: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
		courtroom: courtroom,
	}
}

// Keep reports whether a record passes every report filter: hearing
// weekday, exact hearing time, pro se defendant, and courtroom.
func (rp *Reporter) Keep(rec *Record) bool {
	if rec.Hearing.Weekday() != rp.weekday {
		return false
	}
	sinceMidnight := time.Duration(rec.Hearing.Hour())*time.Hour +
		time.Duration(rec.Hearing.Minute())*time.Minute +
		time.Duration(rec.Hearing.Second())*time.Second
	if sinceMidnight != rp.hearingAt {
		return false
	}
	if !rec.ProSe() {
		return false
	}
	return rec.Courtroom == rp.courtroom
}

// Rows expands the records that pass the filter into report rows, one
// row per co-debtor name. A record with no co-debtor names yields no
// rows. runDate is the processing date stamped on every row.
func (rp *Reporter) Rows(records []*Record, runDate time.Time) []Row {
	var rows []Row
	for _, rec := range records {
		if !rp.Keep(rec) {
			continue
		}
		for _, name := range rec.Defendants {
			rows = append(rows, Row{
				CaseNumber:        rec.CaseNumber,
				Title:             rec.Title,
				HearingDate:       rec.Hearing.Format(rowDateLayout),
				HearingTime:       rec.Hearing.Format(rowTimeLayout),
				Plaintiff:         rec.Plaintiff,
				PlaintiffAttorney: renderAttorney(rec.PlaintiffAttorney),
				Defendant:         name,
				RunDate:           runDate.Format(rowDateLayout),
				Courtroom:         rec.Courtroom,
			})
		}
	}
	return rows
}

func renderAttorney(name string) string {
	if name == "" {
		return AttorneyNone
	}
	return name
}
