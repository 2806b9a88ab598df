package docket

import "time"

// Page holds the ordered text fragments extracted from one PDF page.
// Fragment order is reading order and must be preserved.
type Page struct {
	Number    int
	Fragments []string
}

// Entry is one docket entry: the fragments that belong to it plus the
// date, time and courtroom context carried from the page header. Date
// and Courtroom are empty when the page never named them.
type Entry struct {
	Fragments []string
	Date      string
	Time      string
	Courtroom string
}

// Record is the structured form of one debt-collection entry. A
// Record is built once by the extractor and never mutated afterwards.
type Record struct {
	Title      string
	CaseNumber int
	Plaintiff  string
	// PlaintiffAttorney is empty when no attorney was listed.
	PlaintiffAttorney string
	// Defendants lists co-debtor names. It is populated only when the
	// defendant side appears pro se; represented defendants never make
	// it into the report, so their names are not collected.
	Defendants []string
	// DefendantAttorney is empty when the defendant side is pro se.
	DefendantAttorney string
	Hearing           time.Time
	Courtroom         string
}

// ProSe reports whether the defendant side appeared without counsel.
func (r *Record) ProSe() bool {
	return r.DefendantAttorney == ""
}

// Row is one line of the final report: a qualifying record paired with
// one of its co-debtor names.
type Row struct {
	CaseNumber        int
	Title             string
	HearingDate       string
	HearingTime       string
	Plaintiff         string
	PlaintiffAttorney string
	Defendant         string
	RunDate           string
	Courtroom         string
}

// AttorneyNone is the value rendered in the report when a party has no
// attorney of record. Internally an absent attorney is the empty
// string; the sentinel exists only at the output boundary.
const AttorneyNone = "None"
