package board

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

// BoardID identifies a Board aggregate.
type BoardID uuid.UUID

// ColumnID identifies a column within its board.
type ColumnID uuid.UUID

// CardID identifies a card within its board.
type CardID uuid.UUID

// UserID identifies a user. The engine treats it as opaque; identity is
// established by the caller.
type UserID uuid.UUID

// NewBoardID returns a fresh random BoardID.
func NewBoardID() BoardID { return BoardID(uuid.New()) }

// NewColumnID returns a fresh random ColumnID.
func NewColumnID() ColumnID { return ColumnID(uuid.New()) }

// NewCardID returns a fresh random CardID.
func NewCardID() CardID { return CardID(uuid.New()) }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseBoardID parses the canonical string form of a BoardID.
func ParseBoardID(s string) (BoardID, error) { return parseID[BoardID]("board_id", s) }

// ParseColumnID parses the canonical string form of a ColumnID.
func ParseColumnID(s string) (ColumnID, error) { return parseID[ColumnID]("column_id", s) }

// ParseCardID parses the canonical string form of a CardID.
func ParseCardID(s string) (CardID, error) { return parseID[CardID]("card_id", s) }

// ParseUserID parses the canonical string form of a UserID.
func ParseUserID(s string) (UserID, error) { return parseID[UserID]("user_id", s) }

func parseID[T ~[16]byte](field, s string) (T, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		var zero T
		return zero, &domain.ValidationError{
			Fields: map[string]string{field: "must be a valid UUID"},
		}
	}
	return T(u), nil
}

func (id BoardID) String() string  { return uuid.UUID(id).String() }
func (id ColumnID) String() string { return uuid.UUID(id).String() }
func (id CardID) String() string   { return uuid.UUID(id).String() }
func (id UserID) String() string   { return uuid.UUID(id).String() }

// IsZero reports whether the id is the nil UUID.
func (id BoardID) IsZero() bool { return id == BoardID{} }

// IsZero reports whether the id is the nil UUID.
func (id UserID) IsZero() bool { return id == UserID{} }
