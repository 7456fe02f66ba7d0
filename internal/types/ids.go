package types

import "strconv"

// ID type aliases give domain meaning to the integers passed around the engine.

// IssueID identifies a unique issue on the board
type IssueID int64

// LabelID identifies a label attachable to an issue
type LabelID int64

// UserID identifies an assignee
type UserID int64

// String renders the id the way the REST API puts it in URLs
func (id IssueID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseIssueID parses a decimal issue id, rejecting non-positive values
func ParseIssueID(s string) (IssueID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return IssueID(n), nil
}
