package board

import (
	"strings"
	"unicode/utf8"
)

// Length bounds, counted in characters after trimming.
const (
	MaxBoardNameLength       = 100
	MaxColumnNameLength      = 60
	MaxCardTitleLength       = 200
	MaxCardDescriptionLength = 5000
)

// BoardName is a trimmed, non-empty board name of at most MaxBoardNameLength
// characters.
type BoardName struct{ value string }

// NewBoardName validates and trims raw.
func NewBoardName(raw string) (BoardName, error) {
	v, err := requiredText(raw, MaxBoardNameLength, ErrBoardNameEmpty, ErrBoardNameTooLong)
	if err != nil {
		return BoardName{}, err
	}
	return BoardName{value: v}, nil
}

func (n BoardName) String() string { return n.value }

// ColumnName is a trimmed, non-empty column name of at most
// MaxColumnNameLength characters. Uniqueness is a board concern.
type ColumnName struct{ value string }

// NewColumnName validates and trims raw.
func NewColumnName(raw string) (ColumnName, error) {
	v, err := requiredText(raw, MaxColumnNameLength, ErrColumnNameEmpty, ErrColumnNameTooLong)
	if err != nil {
		return ColumnName{}, err
	}
	return ColumnName{value: v}, nil
}

func (n ColumnName) String() string { return n.value }

// sameAs compares names case-insensitively.
func (n ColumnName) sameAs(other ColumnName) bool {
	return strings.EqualFold(n.value, other.value)
}

// CardTitle is a trimmed, non-empty card title of at most MaxCardTitleLength
// characters.
type CardTitle struct{ value string }

// NewCardTitle validates and trims raw.
func NewCardTitle(raw string) (CardTitle, error) {
	v, err := requiredText(raw, MaxCardTitleLength, ErrCardTitleEmpty, ErrCardTitleTooLong)
	if err != nil {
		return CardTitle{}, err
	}
	return CardTitle{value: v}, nil
}

func (t CardTitle) String() string { return t.value }

// CardDescription is an optional trimmed description. Blank input becomes
// the empty string.
type CardDescription struct{ value string }

// NewCardDescription trims raw and enforces MaxCardDescriptionLength.
func NewCardDescription(raw string) (CardDescription, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > MaxCardDescriptionLength {
		return CardDescription{}, ErrCardDescriptionTooLong
	}
	return CardDescription{value: trimmed}, nil
}

func (d CardDescription) String() string { return d.value }

// OrderIndex is a zero-based position within a container.
type OrderIndex struct{ value int }

// NewOrderIndex rejects negative values.
func NewOrderIndex(v int) (OrderIndex, error) {
	if v < 0 {
		return OrderIndex{}, ErrOrderIndexNegative
	}
	return OrderIndex{value: v}, nil
}

// Int returns the index as an int.
func (o OrderIndex) Int() int { return o.value }

// WipLimit is a positive cap on the number of cards in a column. The zero
// value means unlimited and cannot be produced by NewWipLimit.
type WipLimit struct{ value int }

// NewWipLimit rejects values <= 0.
func NewWipLimit(v int) (WipLimit, error) {
	if v <= 0 {
		return WipLimit{}, ErrWipLimitInvalid
	}
	return WipLimit{value: v}, nil
}

// IsSet reports whether the limit is present.
func (w WipLimit) IsSet() bool { return w.value > 0 }

// Int returns the limit, or 0 when unlimited.
func (w WipLimit) Int() int { return w.value }

// Ptr returns the limit as an optional int for projections.
func (w WipLimit) Ptr() *int {
	if !w.IsSet() {
		return nil
	}
	v := w.value
	return &v
}

// optionalWipLimit converts an optional raw limit. Nil yields the unlimited
// zero value.
func optionalWipLimit(raw *int) (WipLimit, error) {
	if raw == nil {
		return WipLimit{}, nil
	}
	return NewWipLimit(*raw)
}

func requiredText(raw string, maxLen int, errEmpty, errTooLong error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errEmpty
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", errTooLong
	}
	return trimmed, nil
}
